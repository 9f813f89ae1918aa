package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense entry. Amount is a
// signed exact decimal: positive values are earnings, negative values are
// expenses.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	FolderID    string          `gorm:"type:uuid;not null;index" json:"folder_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	// Relationships
	Folder Category `gorm:"foreignKey:FolderID" json:"folder"`
}
