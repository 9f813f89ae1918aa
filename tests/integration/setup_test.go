package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cadee/internal/handlers"
	"cadee/internal/logger"
	"cadee/internal/middleware"
	"cadee/internal/models"
	"cadee/internal/services"
	"cadee/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Transaction{},
		&models.PurchaseGoal{},
		&models.BudgetLimit{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	folderService := services.NewFolderService(db)
	transactionService := services.NewTransactionService(db, folderService)
	goalService := services.NewGoalService(db)
	limitService := services.NewLimitService(db)
	dashboardService := services.NewDashboardService(db, profileService, limitService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, folderService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	limitHandler := handlers.NewLimitHandler(limitService, auditService)
	profileHandler := handlers.NewProfileHandler(profileService, userService)
	folderHandler := handlers.NewFolderHandler(folderService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/", middleware.AuthOptional(), dashboardHandler.GetDashboard)
	router.POST("/register/", authHandler.Register)
	router.POST("/login/", authHandler.Login)

	protected := router.Group("/")
	protected.Use(middleware.AuthRequired())

	protected.GET("/logout/", authHandler.Logout)

	protected.GET("/transactions/", transactionHandler.ListTransactions)
	protected.GET("/transactions/new/", transactionHandler.NewTransactionForm)
	protected.POST("/transactions/new/", transactionHandler.CreateTransaction)

	protected.GET("/limits/edit/", limitHandler.GetLimits)
	protected.POST("/limits/edit/", limitHandler.UpdateLimits)

	protected.GET("/goals/new/", goalHandler.NewGoalForm)
	protected.POST("/goals/new/", goalHandler.CreateGoal)
	protected.POST("/goals/:id/update/", goalHandler.UpdateGoal)
	protected.POST("/goals/:id/delete/", goalHandler.DeleteGoal)

	protected.GET("/profile/edit/", profileHandler.GetProfile)
	protected.POST("/profile/edit/", profileHandler.UpdateProfile)

	protected.GET("/folders/", folderHandler.ListFolders)
	protected.POST("/folders/new/", folderHandler.CreateFolder)
	protected.POST("/folders/:id/delete/", folderHandler.DeleteFolder)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"full_name":"Test User"}`, email, password)
	rec := app.request("POST", "/register/", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// createFolder creates a folder over the API and returns its ID.
func (app *testApp) createFolder(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/folders/new/", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create folder failed: %d %s", rec.Code, rec.Body.String())
	}
	folder := parseJSON(t, rec)["folder"].(map[string]interface{})
	return folder["id"].(string)
}

// createTransaction records a transaction over the API.
func (app *testApp) createTransaction(t *testing.T, token, folderID, amount, description string) {
	t.Helper()
	body := fmt.Sprintf(`{"folder_id":%q,"amount":%q,"description":%q}`, folderID, amount, description)
	rec := app.request("POST", "/transactions/new/", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
}
