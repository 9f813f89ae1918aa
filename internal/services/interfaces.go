package services

import (
	"time"

	"github.com/shopspring/decimal"

	"cadee/internal/models"
	"cadee/internal/pagination"
	"cadee/internal/summary"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ProfileServicer defines the contract for user profile logic. Profiles are
// created lazily; GetOrCreateProfile must be safe under concurrent first
// visits by the same user.
type ProfileServicer interface {
	GetOrCreateProfile(userID, defaultName string) (*models.UserProfile, error)
	UpdateProfile(userID, fullName, avatar string) (*models.UserProfile, error)
}

// FolderServicer defines the contract for transaction folder logic.
type FolderServicer interface {
	CreateFolder(userID, name, colorHex, iconName string) (*models.Category, error)
	GetUserFolders(userID string) ([]models.Category, error)
	GetFolderByID(userID, folderID string) (*models.Category, error)
	DeleteFolder(userID, folderID string) error
}

// TransactionServicer defines the contract for transaction logic.
type TransactionServicer interface {
	CreateTransaction(userID, folderID string, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[summary.TransactionItem], error)
}

// GoalServicer defines the contract for purchase goal logic.
type GoalServicer interface {
	CreateGoal(userID, description string, targetAmount, currentSaved decimal.Decimal, image string, status models.GoalStatus, deadline time.Time) (*models.PurchaseGoal, error)
	GetUserGoals(userID string) ([]models.PurchaseGoal, error)
	UpdateGoalProgress(userID, goalID string, currentSaved *decimal.Decimal, status *models.GoalStatus) (*models.PurchaseGoal, error)
	DeleteGoal(userID, goalID string) error
}

// LimitServicer defines the contract for budget limit logic. Like profiles,
// the single limit row per user is created lazily via an atomic upsert.
type LimitServicer interface {
	GetOrCreateLimit(userID string) (*models.BudgetLimit, error)
	UpdateLimit(userID string, weeklyLimit, monthlyLimit decimal.Decimal) (*models.BudgetLimit, error)
}

// DashboardData is the full dashboard payload: the lazily created profile,
// the user's folders, and the computed financial summary.
type DashboardData struct {
	Profile *models.UserProfile `json:"profile"`
	Folders []models.Category   `json:"folders"`
	summary.Summary
}

// DashboardServicer defines the contract for dashboard assembly.
type DashboardServicer interface {
	GetDashboard(userID string, now time.Time) (*DashboardData, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
