package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
)

// goalService handles purchase goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new purchase goal for the user.
func (s *goalService) CreateGoal(
	userID, description string,
	targetAmount, currentSaved decimal.Decimal,
	image string,
	status models.GoalStatus,
	deadline time.Time,
) (*models.PurchaseGoal, error) {
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if targetAmount.IsNegative() || currentSaved.IsNegative() {
		return nil, apperrors.ErrNegativeGoalValue
	}
	if deadline.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deadline is required")
	}
	if status == "" {
		status = models.GoalStatusWant
	}

	goal := &models.PurchaseGoal{
		UserID:       userID,
		Description:  description,
		TargetAmount: targetAmount,
		CurrentSaved: currentSaved,
		Image:        image,
		Status:       status,
		Deadline:     deadline,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals retrieves all of the user's goals ordered by deadline.
func (s *goalService) GetUserGoals(userID string) ([]models.PurchaseGoal, error) {
	var goals []models.PurchaseGoal
	if err := s.db.Where("user_id = ?", userID).Order("deadline").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// UpdateGoalProgress updates a goal owned by the user. Only current_saved
// and status are editable after creation.
func (s *goalService) UpdateGoalProgress(
	userID, goalID string,
	currentSaved *decimal.Decimal,
	status *models.GoalStatus,
) (*models.PurchaseGoal, error) {
	var goal models.PurchaseGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if currentSaved != nil {
		if currentSaved.IsNegative() {
			return nil, apperrors.ErrNegativeGoalValue
		}
		updates["current_saved"] = *currentSaved
	}
	if status != nil {
		updates["status"] = *status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &goal, nil
}

// DeleteGoal deletes a goal owned by the user. Deleting a missing goal, or
// one owned by someone else, is a silent no-op: the caller cannot
// distinguish the two and neither is an error.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&models.PurchaseGoal{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
