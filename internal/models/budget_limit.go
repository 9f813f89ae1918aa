package models

import "github.com/shopspring/decimal"

// BudgetLimit holds the single pair of spending limits per user. A zero
// limit means "no limit configured" and disables the matching percentage
// on the dashboard.
type BudgetLimit struct {
	Base
	UserID       string          `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	WeeklyLimit  decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"weekly_limit"`
	MonthlyLimit decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"monthly_limit"`
}
