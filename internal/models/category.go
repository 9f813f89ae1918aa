package models

// DefaultCategoryColor is the hex color assigned to folders created
// without an explicit color.
const DefaultCategoryColor = "#C6F4D6"

// Category represents a transaction folder: a user-defined display grouping
// for transactions with a name, color, and optional icon.
type Category struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	ColorHex string `gorm:"size:7;default:#C6F4D6" json:"color_hex"`
	IconName string `gorm:"size:20" json:"icon_name"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:FolderID" json:"transactions,omitempty"`
}
