package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"spendtrack/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A username collision is reported as ErrDuplicate.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// SetLockState overwrites the failed-attempt counter and lockout expiry.
func (r *GORMUserRepository) SetLockState(username string, failedAttempts int, lockedUntil *time.Time) error {
	res := r.db.Model(&models.User{}).Where("username = ?", username).
		Updates(map[string]interface{}{
			"failed_login_attempts": failedAttempts,
			"locked_until":          lockedUntil,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update lock state for %s: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordLogin clears the lockout bookkeeping and stamps the last login time.
func (r *GORMUserRepository) RecordLogin(username string) error {
	res := r.db.Model(&models.User{}).Where("username = ?", username).
		Updates(map[string]interface{}{
			"failed_login_attempts": 0,
			"locked_until":          nil,
			"last_login":            time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to record login for %s: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
