package services

import (
	"testing"
	"time"

	"cadee/internal/models"
	"cadee/internal/testutil"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewDashboardService(db, NewProfileService(db), NewLimitService(db))
	user := testutil.CreateTestUser(t, db)
	folder := testutil.CreateTestFolder(t, db, user.ID)

	// Friday 2024-03-15, noon UTC.
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	testutil.CreateTestTransactionAt(t, db, user.ID, folder.ID, "1000", now.AddDate(0, 0, -3))
	testutil.CreateTestTransactionAt(t, db, user.ID, folder.ID, "-250", now.AddDate(0, 0, -2))
	testutil.CreateTestTransactionAt(t, db, user.ID, folder.ID, "-100", now.AddDate(0, 0, -10))
	testutil.CreateTestLimit(t, db, user.ID, "500", "2000")
	testutil.CreateTestGoal(t, db, user.ID, "4000", "1000", now.AddDate(0, 6, 0))

	t.Run("assembles the full summary", func(t *testing.T) {
		data, err := service.GetDashboard(user.ID, now)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, data.TotalSavings, "650")
		testutil.AssertDecimalEqual(t, data.MonthEarnings, "1000")
		testutil.AssertDecimalEqual(t, data.MonthExpenses, "350")
		testutil.AssertDecimalEqual(t, data.WeeklySpent, "250")
		testutil.AssertDecimalEqual(t, data.WeeklyPercent, "50")
		testutil.AssertDecimalEqual(t, data.MonthlyPercent, "17.5")
		testutil.AssertDecimalEqual(t, data.SavingsRatio, "65")

		if len(data.Folders) != 1 {
			t.Errorf("expected 1 folder, got %d", len(data.Folders))
		}
		if len(data.Goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(data.Goals))
		}
		testutil.AssertDecimalEqual(t, data.Goals[0].Progress, "25")
		if len(data.RecentTransactions) != 3 {
			t.Errorf("expected 3 recent transactions, got %d", len(data.RecentTransactions))
		}
	})

	t.Run("creates the profile and limit rows lazily", func(t *testing.T) {
		fresh := testutil.CreateTestUserWithEmail(t, db, "fresh@example.com")

		data, err := service.GetDashboard(fresh.ID, now)
		testutil.AssertNoError(t, err)

		if data.Profile == nil || data.Profile.FullName != fresh.Email {
			t.Error("expected a profile seeded with the user's email")
		}
		testutil.AssertDecimalEqual(t, data.WeeklyLimit, "0")
		testutil.AssertDecimalEqual(t, data.WeeklyPercent, "0")

		var profiles, limits int64
		db.Model(&models.UserProfile{}).Where("user_id = ?", fresh.ID).Count(&profiles)
		db.Model(&models.BudgetLimit{}).Where("user_id = ?", fresh.ID).Count(&limits)
		if profiles != 1 || limits != 1 {
			t.Errorf("expected 1 profile and 1 limit row, got %d and %d", profiles, limits)
		}
	})
}
