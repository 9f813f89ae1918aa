package main

import (
	"fmt"
	"net/http"
	"os"

	"cadee/internal/config"
	"cadee/internal/database"
	"cadee/internal/handlers"
	"cadee/internal/logger"
	"cadee/internal/middleware"
	"cadee/internal/services"
	"cadee/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cadee/internal/docs" // Import swagger docs
)

// @title           Cadee API
// @version         1.0
// @description     Cadee is a personal finance tracker: record income and expenses in folders, set weekly/monthly spending limits, and track purchase goals.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	folderService := services.NewFolderService(db)
	transactionService := services.NewTransactionService(db, folderService)
	goalService := services.NewGoalService(db)
	limitService := services.NewLimitService(db)
	dashboardService := services.NewDashboardService(db, profileService, limitService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, folderService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	limitHandler := handlers.NewLimitHandler(limitService, auditService)
	profileHandler := handlers.NewProfileHandler(profileService, userService)
	folderHandler := handlers.NewFolderHandler(folderService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Dashboard: anonymous callers get the empty view-model
	router.GET("/", middleware.AuthOptional(), dashboardHandler.GetDashboard)

	// Public auth routes
	router.POST("/register/", authHandler.Register)
	router.POST("/login/", authHandler.Login)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthRequired())

	protected.GET("/logout/", authHandler.Logout)

	// Transactions
	protected.GET("/transactions/", transactionHandler.ListTransactions)
	protected.GET("/transactions/new/", transactionHandler.NewTransactionForm)
	protected.POST("/transactions/new/", transactionHandler.CreateTransaction)

	// Budget limits
	protected.GET("/limits/edit/", limitHandler.GetLimits)
	protected.POST("/limits/edit/", limitHandler.UpdateLimits)

	// Purchase goals
	protected.GET("/goals/new/", goalHandler.NewGoalForm)
	protected.POST("/goals/new/", goalHandler.CreateGoal)
	protected.POST("/goals/:id/update/", goalHandler.UpdateGoal)
	protected.POST("/goals/:id/delete/", goalHandler.DeleteGoal)

	// Profile
	protected.GET("/profile/edit/", profileHandler.GetProfile)
	protected.POST("/profile/edit/", profileHandler.UpdateProfile)

	// Folders
	protected.GET("/folders/", folderHandler.ListFolders)
	protected.POST("/folders/new/", folderHandler.CreateFolder)
	protected.POST("/folders/:id/delete/", folderHandler.DeleteFolder)

	log.Infof("Starting Cadee backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
