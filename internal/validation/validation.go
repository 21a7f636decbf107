// Package validation normalizes and rejects user-supplied input before it
// reaches storage. All functions are pure; rejections carry a human-readable
// reason as a *errs.ValidationError.
package validation

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"spendtrack/internal/errs"
)

// DefaultCategory is used whenever a category is missing or sanitized away.
const DefaultCategory = "General"

const (
	maxCategoryLen = 50
	maxSanitizeLen = 1000
)

var maxAmount = decimal.RequireFromString("999999.99")

// unsafeChars are stripped from free-text fields before storage.
var unsafeChars = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Charset rule that plain min/max tags cannot express.
	_ = v.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
			case r == '_' || r == '-':
			default:
				return false
			}
		}
		return true
	})
	return v
}

// Username trims and validates an account name: 3-50 characters drawn from
// letters, digits, underscores and hyphens.
func Username(username string) (string, error) {
	username = strings.TrimSpace(username)
	if err := validate.Var(username, "required,min=3,max=50,username_charset"); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Tag() {
			case "required":
				return "", errs.Validation("username is required")
			case "min":
				return "", errs.Validation("username must be at least 3 characters long")
			case "max":
				return "", errs.Validation("username must be less than 50 characters")
			case "username_charset":
				return "", errs.Validation("username can only contain letters, numbers, underscores, and hyphens")
			}
		}
		return "", errs.Validation("username is invalid")
	}
	return username, nil
}

// Password enforces the account password policy: 8-128 characters with at
// least one uppercase letter, one lowercase letter, and one digit. The
// password itself is returned unchanged.
func Password(password string) (string, error) {
	if password == "" {
		return "", errs.Validation("password is required")
	}
	if err := validate.Var(password, "min=8"); err != nil {
		return "", errs.Validation("password must be at least 8 characters long")
	}
	if err := validate.Var(password, "max=128"); err != nil {
		return "", errs.Validation("password must be less than 128 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return "", errs.Validation("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return "", errs.Validation("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return "", errs.Validation("password must contain at least one digit")
	}
	return password, nil
}

// ExpenseName trims and validates an expense name (1-100 characters), then
// strips characters that are unsafe in rendered output.
func ExpenseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Var(name, "required,max=100"); err != nil {
		if name == "" {
			return "", errs.Validation("expense name cannot be empty")
		}
		return "", errs.Validation("expense name must be less than 100 characters")
	}
	return unsafeChars.Replace(name), nil
}

// Amount validates a numeric or numeric-string amount and rounds it to two
// decimal places, half away from zero (10.005 rounds to 10.01). Amounts must
// be greater than zero and at most 999,999.99; the bound is checked before
// rounding.
func Amount(value any) (float64, error) {
	var d decimal.Decimal
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, errs.Validation("amount is required")
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return 0, errs.Validation("amount must be a valid number")
		}
		d = parsed
	case float64:
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case decimal.Decimal:
		d = v
	default:
		return 0, errs.Validation("amount must be a number")
	}

	if !d.IsPositive() {
		return 0, errs.Validation("amount must be greater than 0")
	}
	if d.GreaterThan(maxAmount) {
		return 0, errs.Validation("amount cannot exceed 999,999.99")
	}

	f, _ := d.Round(2).Float64()
	return f, nil
}

// Category normalizes an optional expense category: empty input defaults to
// "General", long values are truncated to 50 characters, and unsafe characters
// are stripped. If stripping empties the result, the default is used again.
func Category(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	if runes := []rune(category); len(runes) > maxCategoryLen {
		category = string(runes[:maxCategoryLen])
	}
	category = unsafeChars.Replace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// Schedule normalizes a recurrence label. Only daily, weekly, monthly, and
// yearly are recognized; anything else is coerced to the empty string (no
// schedule) rather than rejected.
func Schedule(schedule string) string {
	schedule = strings.ToLower(strings.TrimSpace(schedule))
	switch schedule {
	case "daily", "weekly", "monthly", "yearly":
		return schedule
	}
	return ""
}

// Sanitize strips C0 and C1 control characters, truncates to 1000 characters,
// and trims surrounding whitespace.
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	if runes := []rune(s); len(runes) > maxSanitizeLen {
		s = string(runes[:maxSanitizeLen])
	}
	return strings.TrimSpace(s)
}
