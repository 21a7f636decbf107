package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"spendtrack/internal/auth"
	"spendtrack/internal/errs"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/validation"
)

// AuthService handles account registration and login. A successful login
// yields a Session the caller hands to the expense ledger; the service itself
// keeps no mutable identity state.
type AuthService struct {
	users   repositories.UserRepository
	lockout *LockoutService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository, lockout *LockoutService) *AuthService {
	return &AuthService{
		users:   users,
		lockout: lockout,
	}
}

// Register creates a new account and returns its id.
func (s *AuthService) Register(username, password string) (uint, error) {
	username, err := validation.Username(validation.Sanitize(username))
	if err != nil {
		return 0, err
	}
	if _, err := validation.Password(password); err != nil {
		return 0, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return 0, errs.Validation("username already exists")
		}
		return 0, errs.Storage("create user", err)
	}

	log.Printf("User created successfully: %s (ID: %d)", username, user.ID)
	return user.ID, nil
}

// Login authenticates a username and password and returns a fresh session.
// Unknown usernames and wrong passwords produce the same error so accounts
// cannot be enumerated; both paths count toward the lockout threshold. The
// lockout check runs before the existence check, so a nonexistent username can
// never observe a "locked" response.
func (s *AuthService) Login(username, password string) (*models.Session, error) {
	username, err := validation.Username(validation.Sanitize(username))
	if err != nil {
		return nil, err
	}

	if s.lockout.IsLocked(username) {
		return nil, errs.Auth("account is temporarily locked due to too many failed login attempts")
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.lockout.RecordFailure(username)
			return nil, errs.Auth("invalid username or password")
		}
		return nil, errs.Storage("look up user", err)
	}

	if !user.IsActive {
		return nil, errs.Auth("account is deactivated")
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.lockout.RecordFailure(username)
		return nil, errs.Auth("invalid username or password")
	}

	s.lockout.RecordSuccess(username)
	log.Printf("User logged in successfully: %s", username)
	return &models.Session{
		Token:      uuid.New().String(),
		UserID:     user.ID,
		Username:   user.Username,
		LoggedInAt: time.Now(),
	}, nil
}

// Logout invalidates the session. Safe to call with a nil or already cleared
// session.
func (s *AuthService) Logout(session *models.Session) {
	if session == nil || session.UserID == 0 {
		return
	}
	log.Printf("User logged out: %s", session.Username)
	*session = models.Session{}
}
