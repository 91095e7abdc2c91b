package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	LastLoginAt   *time.Time      `json:"last_login_at"`
}

// MaskedAccountNumber keeps the last four digits visible.
func (u *User) MaskedAccountNumber() string {
	n := len(u.AccountNumber)
	if n <= 4 {
		return u.AccountNumber
	}
	masked := make([]byte, n)
	for i := 0; i < n-4; i++ {
		masked[i] = '*'
	}
	copy(masked[n-4:], u.AccountNumber[n-4:])
	return string(masked)
}
