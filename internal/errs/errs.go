// Package errs defines the error taxonomy shared by all services: validation
// failures the caller can correct, authentication failures the caller can
// recover from by re-authenticating, and storage failures that are surfaced
// as-is.
package errs

import "fmt"

// ValidationError reports malformed or out-of-policy input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation builds a ValidationError with a human-readable reason.
func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AuthError reports a failed or missing authentication: invalid credentials,
// a locked or deactivated account, or an operation attempted without a session.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// Auth builds an AuthError with a human-readable reason.
func Auth(format string, args ...any) *AuthError {
	return &AuthError{Reason: fmt.Sprintf(format, args...)}
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the given operation.
func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
