package services

import (
	"testing"

	"cadee/internal/models"
	"cadee/internal/testutil"
)

func TestProfileService_GetOrCreateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewProfileService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("creates a profile with the default name on first access", func(t *testing.T) {
		profile, err := service.GetOrCreateProfile(user.ID, user.Email)

		testutil.AssertNoError(t, err)
		if profile.FullName != user.Email {
			t.Errorf("expected default name %s, got %s", user.Email, profile.FullName)
		}
	})

	t.Run("keeps the existing profile on repeat access", func(t *testing.T) {
		profile, err := service.GetOrCreateProfile(user.ID, "someone else")
		testutil.AssertNoError(t, err)

		if profile.FullName != user.Email {
			t.Error("repeat access overwrote the stored name")
		}

		var count int64
		db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single profile row, got %d", count)
		}
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewProfileService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("updates the name and avatar", func(t *testing.T) {
		_, err := service.UpdateProfile(user.ID, "Ada Lovelace", "avatars/ada.png")
		testutil.AssertNoError(t, err)

		var stored models.UserProfile
		db.First(&stored, "user_id = ?", user.ID)
		if stored.FullName != "Ada Lovelace" {
			t.Errorf("expected updated name, got %s", stored.FullName)
		}
		if stored.Avatar != "avatars/ada.png" {
			t.Errorf("expected updated avatar, got %s", stored.Avatar)
		}
	})

	t.Run("keeps the avatar when omitted", func(t *testing.T) {
		_, err := service.UpdateProfile(user.ID, "Ada L.", "")
		testutil.AssertNoError(t, err)

		var stored models.UserProfile
		db.First(&stored, "user_id = ?", user.ID)
		if stored.FullName != "Ada L." {
			t.Errorf("expected updated name, got %s", stored.FullName)
		}
		if stored.Avatar != "avatars/ada.png" {
			t.Error("expected the avatar to be preserved")
		}
	})
}
