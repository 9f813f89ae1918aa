package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
	"cadee/internal/summary"
)

// dashboardService assembles the dashboard payload. All derivation happens
// in the summary package; this service only fetches the rows and keeps the
// lazily created profile and limit rows up to date.
type dashboardService struct {
	db             *gorm.DB
	profileService ProfileServicer
	limitService   LimitServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, profileService ProfileServicer, limitService LimitServicer) DashboardServicer {
	return &dashboardService{db: db, profileService: profileService, limitService: limitService}
}

// GetDashboard loads the user's profile, folders, transactions, limits, and
// goals, and computes the financial summary as of now.
func (s *dashboardService) GetDashboard(userID string, now time.Time) (*DashboardData, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile, err := s.profileService.GetOrCreateProfile(userID, user.Email)
	if err != nil {
		return nil, err
	}

	limit, err := s.limitService.GetOrCreateLimit(userID)
	if err != nil {
		return nil, err
	}

	var folders []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&folders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := s.db.Preload("Folder").Where("user_id = ?", userID).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.PurchaseGoal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DashboardData{
		Profile: profile,
		Folders: folders,
		Summary: summary.Compute(txns, *limit, goals, now),
	}, nil
}
