package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmailTaken       = errors.New("email is already used by another account")
	ErrNothingToUpdate  = errors.New("at least one field must be provided")
	ErrUserUpdateFailed = errors.New("failed to update user")
)
