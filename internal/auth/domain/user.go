package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserAuth struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	AccountNumber string
	Balance       decimal.Decimal
	PasswordHash  string
	CreatedAt     time.Time
	LastLoginAt   *time.Time
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateLogin applies the client-side checks made before any lookup.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidUserEmail
	}
	if password == "" {
		return ErrInvalidUserPassword
	}
	if !IsValidEmail(email) {
		return ErrInvalidUserEmailFormat
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
