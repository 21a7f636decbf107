package repositories

import (
	"errors"
	"time"

	"spendtrack/internal/models"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository defines the interface for user data access, including the
// lockout bookkeeping columns on the user row.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	// SetLockState overwrites the failed-attempt counter and lockout expiry.
	// A nil lockedUntil clears the lockout.
	SetLockState(username string, failedAttempts int, lockedUntil *time.Time) error
	// RecordLogin clears the lockout bookkeeping and stamps the last login time.
	RecordLogin(username string) error
}
