package domain

import "errors"

var (
	ErrInvalidUserEmail       = errors.New("email is required")
	ErrInvalidUserEmailFormat = errors.New("email format is invalid")
	ErrInvalidUserPassword    = errors.New("password is required")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrTooManyLoginAttempts   = errors.New("too many login attempts, please try again later")
	ErrSessionNotFound        = errors.New("session not found")
	ErrBiometricNotBound      = errors.New("no account is linked to biometric login")
	ErrBiometricFailed        = errors.New("biometric login failed")
	ErrBiometricMismatch      = errors.New("biometric credentials do not match a known account")
)
