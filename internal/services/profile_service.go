package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
)

// profileService handles user profile business logic.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetOrCreateProfile returns the user's profile, creating it with the given
// default display name if absent. The insert runs as ON CONFLICT DO NOTHING
// against the unique user_id index, so two concurrent first visits cannot
// produce duplicate rows.
func (s *profileService) GetOrCreateProfile(userID, defaultName string) (*models.UserProfile, error) {
	seed := &models.UserProfile{
		UserID:   userID,
		FullName: defaultName,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(seed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// UpdateProfile upserts the user's display name and avatar reference.
func (s *profileService) UpdateProfile(userID, fullName, avatar string) (*models.UserProfile, error) {
	profile, err := s.GetOrCreateProfile(userID, fullName)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"full_name": fullName}
	if avatar != "" {
		updates["avatar"] = avatar
	}
	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return profile, nil
}
