package services

import (
	"errors"
	"log"
	"time"

	"spendtrack/internal/repositories"
)

// Default brute-force protection policy.
const (
	DefaultMaxLoginAttempts = 5
	DefaultLockoutDuration  = 30 * time.Minute
)

// LockoutService counts consecutive failed logins per username and enforces a
// temporary lockout once the threshold is crossed. Expired lockouts are
// cleared lazily on the next check; there is no background sweep. All
// bookkeeping failures are logged rather than propagated so they never block
// the primary login flow.
type LockoutService struct {
	users       repositories.UserRepository
	maxAttempts int
	duration    time.Duration

	// Now returns the current time; replaceable in tests.
	Now func() time.Time
}

// NewLockoutService creates a new LockoutService. Non-positive policy values
// fall back to the defaults.
func NewLockoutService(users repositories.UserRepository, maxAttempts int, duration time.Duration) *LockoutService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxLoginAttempts
	}
	if duration <= 0 {
		duration = DefaultLockoutDuration
	}
	return &LockoutService{
		users:       users,
		maxAttempts: maxAttempts,
		duration:    duration,
		Now:         time.Now,
	}
}

// IsLocked reports whether the account is currently locked out. An expired
// lockout is cleared on the spot (failed counter to zero, expiry to null). A
// failed lookup is logged and treated as "not locked" so a store hiccup cannot
// deny access indefinitely.
func (s *LockoutService) IsLocked(username string) bool {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error checking lock state for %s: %v", username, err)
		}
		return false
	}
	if user.LockedUntil == nil {
		return false
	}
	if s.Now().Before(*user.LockedUntil) {
		return true
	}
	if err := s.users.SetLockState(username, 0, nil); err != nil {
		log.Printf("Error clearing expired lockout for %s: %v", username, err)
	}
	return false
}

// RecordFailure counts one failed attempt, setting the lockout expiry once the
// threshold is reached. Unknown usernames are silently ignored.
func (s *LockoutService) RecordFailure(username string) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error handling failed login for %s: %v", username, err)
		}
		return
	}

	attempts := user.FailedLoginAttempts + 1
	var lockedUntil *time.Time
	if attempts >= s.maxAttempts {
		t := s.Now().Add(s.duration)
		lockedUntil = &t
	}
	if err := s.users.SetLockState(username, attempts, lockedUntil); err != nil {
		log.Printf("Error recording failed login for %s: %v", username, err)
	}
}

// RecordSuccess resets the failure counter, clears any lockout, and stamps the
// last login time.
func (s *LockoutService) RecordSuccess(username string) {
	if err := s.users.RecordLogin(username); err != nil {
		log.Printf("Error resetting failed login attempts for %s: %v", username, err)
	}
}
