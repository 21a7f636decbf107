package models

import "time"

// User represents a registered account. Lockout bookkeeping lives on the row
// itself so failed attempts survive process restarts.
type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Username            string     `json:"username" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,min=3,max=50"`
	PasswordHash        string     `json:"-" gorm:"type:varchar(255);not null"` // Never serialized
	CreatedAt           time.Time  `json:"created_at"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	FailedLoginAttempts int        `json:"-" gorm:"not null;default:0"`
	LockedUntil         *time.Time `json:"-"`
	IsActive            bool       `json:"is_active" gorm:"not null;default:true"`
}
