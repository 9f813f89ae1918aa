package services

import (
	"testing"
	"time"

	"cadee/internal/models"
	"cadee/internal/pagination"
	"cadee/internal/testutil"
)

func TestTransactionService_CreateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewTransactionService(db, NewFolderService(db))
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUserWithEmail(t, db, "other@example.com")
	folder := testutil.CreateTestFolder(t, db, user.ID)

	t.Run("creates a transaction in an owned folder", func(t *testing.T) {
		date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		txn, err := service.CreateTransaction(user.ID, folder.ID,
			testutil.Money(t, "-149.99"), "Electric bill", date)

		testutil.AssertNoError(t, err)
		if txn.ID == "" {
			t.Error("expected transaction ID to be set")
		}
		testutil.AssertDecimalEqual(t, txn.Amount, "-149.99")
		if !txn.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, txn.Date)
		}
		if txn.Folder.Name != folder.Name {
			t.Error("expected the folder to be attached")
		}
	})

	t.Run("owner is always the requester", func(t *testing.T) {
		txn, err := service.CreateTransaction(user.ID, folder.ID,
			testutil.Money(t, "50"), "Refund", time.Now())

		testutil.AssertNoError(t, err)
		if txn.UserID != user.ID {
			t.Errorf("expected owner %s, got %s", user.ID, txn.UserID)
		}
	})

	t.Run("defaults a zero date to now", func(t *testing.T) {
		before := time.Now()
		txn, err := service.CreateTransaction(user.ID, folder.ID,
			testutil.Money(t, "10"), "Coffee", time.Time{})

		testutil.AssertNoError(t, err)
		if txn.Date.Before(before) {
			t.Error("expected date to default to the current time")
		}
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		_, err := service.CreateTransaction(user.ID, folder.ID,
			testutil.Money(t, "10"), "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects a folder owned by another user", func(t *testing.T) {
		_, err := service.CreateTransaction(other.ID, folder.ID,
			testutil.Money(t, "10"), "Sneaky", time.Now())
		testutil.AssertAppError(t, err, "FOLDER_NOT_FOUND")

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", other.ID).Count(&count)
		if count != 0 {
			t.Error("expected no transaction to be stored")
		}
	})

	t.Run("rejects a missing folder", func(t *testing.T) {
		_, err := service.CreateTransaction(user.ID, "00000000-0000-0000-0000-000000000000",
			testutil.Money(t, "10"), "Orphan", time.Now())
		testutil.AssertAppError(t, err, "FOLDER_NOT_FOUND")
	})
}

func TestTransactionService_GetUserTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewTransactionService(db, NewFolderService(db))
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUserWithEmail(t, db, "other@example.com")
	folder := testutil.CreateTestFolder(t, db, user.ID)
	otherFolder := testutil.CreateTestFolder(t, db, other.ID)

	now := time.Now()
	testutil.CreateTestTransactionAt(t, db, user.ID, folder.ID, "-100", now.AddDate(0, 0, -2))
	testutil.CreateTestTransactionAt(t, db, user.ID, folder.ID, "500", now.AddDate(0, 0, -1))
	testutil.CreateTestTransactionAt(t, db, user.ID, folder.ID, "-25.50", now)
	testutil.CreateTestTransactionAt(t, db, other.ID, otherFolder.ID, "-999", now)

	t.Run("returns only the user's transactions, newest first", func(t *testing.T) {
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 {
			t.Fatalf("expected 3 transactions, got %d", page.TotalItems)
		}
		testutil.AssertDecimalEqual(t, page.Data[0].Amount, "-25.50")
		testutil.AssertDecimalEqual(t, page.Data[2].Amount, "-100")
	})

	t.Run("precomputes display fields", func(t *testing.T) {
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		expense := page.Data[0]
		testutil.AssertDecimalEqual(t, expense.AmountDisplay, "25.50")
		if !expense.IsNegative {
			t.Error("expected the expense to be flagged negative")
		}
		if expense.FolderName != folder.Name {
			t.Error("expected the folder name to be preloaded")
		}

		income := page.Data[1]
		testutil.AssertDecimalEqual(t, income.AmountDisplay, "500")
		if income.IsNegative {
			t.Error("expected the income to not be flagged negative")
		}
	})

	t.Run("paginates", func(t *testing.T) {
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 1 {
			t.Fatalf("expected 1 item on page 2, got %d", len(page.Data))
		}
		if page.TotalPages != 2 {
			t.Errorf("expected 2 total pages, got %d", page.TotalPages)
		}
	})
}
