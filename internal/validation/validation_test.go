package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"spendtrack/internal/errs"
	"spendtrack/internal/validation"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"valid", "alice", "alice", ""},
		{"trims whitespace", "  alice  ", "alice", ""},
		{"minimum length", "abc", "abc", ""},
		{"maximum length", strings.Repeat("a", 50), strings.Repeat("a", 50), ""},
		{"underscore and hyphen", "bob_the-builder", "bob_the-builder", ""},
		{"empty", "", "", "username is required"},
		{"too short", "ab", "", "at least 3 characters"},
		{"too long", strings.Repeat("a", 51), "", "less than 50 characters"},
		{"space inside", "bad user", "", "letters, numbers, underscores, and hyphens"},
		{"punctuation", "user!", "", "letters, numbers, underscores, and hyphens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.Username(tt.input)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var verr *errs.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "ValidPass123", ""},
		{"minimum length", "Abcdefg1", ""},
		{"maximum length", "Aa1" + strings.Repeat("x", 125), ""},
		{"empty", "", "password is required"},
		{"too short", "Abc1", "at least 8 characters"},
		{"too long", "Aa1" + strings.Repeat("x", 126), "less than 128 characters"},
		{"missing uppercase", "validpass123", "uppercase letter"},
		{"missing lowercase", "VALIDPASS123", "lowercase letter"},
		{"missing digit", "ValidPassword", "digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.Password(tt.input)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestExpenseName(t *testing.T) {
	got, err := validation.ExpenseName("  Coffee  ")
	assert.NoError(t, err)
	assert.Equal(t, "Coffee", got)

	got, err = validation.ExpenseName(`<Coffee> "to go"`)
	assert.NoError(t, err)
	assert.Equal(t, "Coffee to go", got)

	got, err = validation.ExpenseName(strings.Repeat("a", 100))
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 100), got)

	_, err = validation.ExpenseName("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")

	_, err = validation.ExpenseName("   ")
	assert.Error(t, err)

	_, err = validation.ExpenseName(strings.Repeat("a", 101))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "less than 100 characters")
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr string
	}{
		{"numeric string", "50.00", 50.00, ""},
		{"string with whitespace", "  25.5  ", 25.50, ""},
		{"float", 4.50, 4.50, ""},
		{"int", 7, 7.00, ""},
		{"rounds half away from zero", "10.005", 10.01, ""},
		{"rounds down", "10.004", 10.00, ""},
		{"upper bound", "999999.99", 999999.99, ""},
		{"zero", "0", 0, "greater than 0"},
		{"negative", "-5.00", 0, "greater than 0"},
		{"over limit", "1000000", 0, "cannot exceed 999,999.99"},
		{"not a number", "abc", 0, "valid number"},
		{"empty string", "   ", 0, "amount is required"},
		{"unsupported type", true, 0, "must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.Amount(tt.input)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Food", validation.Category("Food"))
	assert.Equal(t, "General", validation.Category(""))
	assert.Equal(t, "General", validation.Category("   "))
	assert.Equal(t, "Books", validation.Category(`"Books"`))
	// Stripping may empty the value entirely, which falls back to the default.
	assert.Equal(t, "General", validation.Category(`<>"'`))
	assert.Equal(t, strings.Repeat("a", 50), validation.Category(strings.Repeat("a", 60)))
}

func TestSchedule(t *testing.T) {
	assert.Equal(t, "daily", validation.Schedule("daily"))
	assert.Equal(t, "weekly", validation.Schedule("  WEEKLY  "))
	assert.Equal(t, "monthly", validation.Schedule("Monthly"))
	assert.Equal(t, "yearly", validation.Schedule("yearly"))
	// Unknown labels are coerced to "no schedule", never rejected.
	assert.Equal(t, "", validation.Schedule("fortnightly"))
	assert.Equal(t, "", validation.Schedule(""))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "abc", validation.Sanitize("a\x00b\x1fc"))
	assert.Equal(t, "hello", validation.Sanitize("  hello  "))
	assert.Equal(t, "ab", validation.Sanitize("ab"))
	assert.Equal(t, strings.Repeat("a", 1000), validation.Sanitize(strings.Repeat("a", 1200)))
	assert.Equal(t, "", validation.Sanitize("\x01\x02\x03"))
}
