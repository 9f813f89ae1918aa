package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
)

// limitService handles budget limit business logic.
type limitService struct {
	db *gorm.DB
}

// NewLimitService creates a new LimitServicer.
func NewLimitService(db *gorm.DB) LimitServicer {
	return &limitService{db: db}
}

// GetOrCreateLimit returns the user's budget limit row, creating it with
// zero limits if absent. Zero means "no limit configured". The insert is an
// atomic upsert against the unique user_id index.
func (s *limitService) GetOrCreateLimit(userID string) (*models.BudgetLimit, error) {
	seed := &models.BudgetLimit{UserID: userID}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(seed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var limit models.BudgetLimit
	if err := s.db.Where("user_id = ?", userID).First(&limit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &limit, nil
}

// UpdateLimit upserts the user's weekly and monthly limits. Both must be
// non-negative; zero disables the matching limit.
func (s *limitService) UpdateLimit(userID string, weeklyLimit, monthlyLimit decimal.Decimal) (*models.BudgetLimit, error) {
	if weeklyLimit.IsNegative() || monthlyLimit.IsNegative() {
		return nil, apperrors.ErrNegativeLimit
	}

	limit, err := s.GetOrCreateLimit(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"weekly_limit":  weeklyLimit,
		"monthly_limit": monthlyLimit,
	}
	if err := s.db.Model(limit).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return limit, nil
}
