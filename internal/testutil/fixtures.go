package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cadee/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Money parses a decimal literal, failing the test on bad input.
func Money(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestFolder creates a transaction folder for the user.
func CreateTestFolder(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	folder := &models.Category{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Folder %d", nextID()),
		ColorHex: models.DefaultCategoryColor,
	}
	if err := db.Create(folder).Error; err != nil {
		t.Fatalf("failed to create test folder: %v", err)
	}
	return folder
}

// CreateTestTransaction creates a transaction with the given signed decimal
// amount ("500.00" income, "-42.50" expense) dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, folderID, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, folderID, amount, time.Now())
}

// CreateTestTransactionAt creates a transaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID, folderID, amount string, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:      userID,
		FolderID:    folderID,
		Amount:      Money(t, amount),
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestGoal creates a purchase goal with the given target and saved amounts.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID, target, saved string, deadline time.Time) *models.PurchaseGoal {
	t.Helper()

	goal := &models.PurchaseGoal{
		UserID:       userID,
		Description:  fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: Money(t, target),
		CurrentSaved: Money(t, saved),
		Status:       models.GoalStatusWant,
		Deadline:     deadline,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestLimit creates the user's budget limit row.
func CreateTestLimit(t *testing.T, db *gorm.DB, userID, weekly, monthly string) *models.BudgetLimit {
	t.Helper()

	limit := &models.BudgetLimit{
		UserID:       userID,
		WeeklyLimit:  Money(t, weekly),
		MonthlyLimit: Money(t, monthly),
	}
	if err := db.Create(limit).Error; err != nil {
		t.Fatalf("failed to create test limit: %v", err)
	}
	return limit
}
