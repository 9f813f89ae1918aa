package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the priority classification of a purchase goal
type GoalStatus string

const (
	GoalStatusPriority GoalStatus = "priority"
	GoalStatusWant     GoalStatus = "want"
	GoalStatusImpulse  GoalStatus = "impulse"
	GoalStatusAchieved GoalStatus = "achieved"
)

// Label returns the human-readable form of the status.
func (s GoalStatus) Label() string {
	switch s {
	case GoalStatusPriority:
		return "Priority"
	case GoalStatusWant:
		return "Want"
	case GoalStatusImpulse:
		return "Impulse"
	case GoalStatusAchieved:
		return "Achieved"
	}
	return string(s)
}

// PurchaseGoal represents a savings target the user is working toward.
// TargetAmount and CurrentSaved are independent fields; progress is derived
// at read time, never stored.
type PurchaseGoal struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Description  string          `gorm:"size:255;not null" json:"description"`
	TargetAmount decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"target_amount"`
	CurrentSaved decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"current_saved"`
	Image        string          `gorm:"size:500" json:"image"`
	Status       GoalStatus      `gorm:"size:10;not null;default:want" json:"status"`
	Deadline     time.Time       `gorm:"not null" json:"deadline"`
}
