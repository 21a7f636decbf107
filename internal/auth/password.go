// Package auth provides one-way password hashing for account credentials.
package auth

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"spendtrack/internal/errs"
)

// HashCost is the bcrypt work factor (2^12 internal rounds).
const HashCost = 12

// HashPassword hashes a plaintext password with a per-call random salt, so the
// same password hashed twice yields different outputs.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errs.Validation("password cannot be empty")
	}
	if len(password) < 8 {
		return "", errs.Validation("password must be at least 8 characters long")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return "", errs.Storage("hash password", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password reproduces hash. A malformed hash is
// logged and reported as a mismatch, so callers cannot distinguish it from a
// wrong password. The only error returned is for empty arguments.
func CheckPassword(password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, errs.Validation("password and hash cannot be empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Printf("Error verifying password: %v", err)
		}
		return false, nil
	}
	return true, nil
}
