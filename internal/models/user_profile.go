package models

// UserProfile holds display data attached to a user. There is exactly one
// profile row per user; it is created lazily on registration or first
// dashboard visit.
type UserProfile struct {
	Base
	UserID   string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName string `gorm:"size:255" json:"full_name"`
	Avatar   string `gorm:"size:500" json:"avatar"`
}
