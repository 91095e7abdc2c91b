package domain

import "errors"

var (
	ErrStoreUnavailable        = errors.New("credential store unavailable")
	ErrInvalidReason           = errors.New("challenge reason is required")
	ErrInvalidUserID           = errors.New("user ID is required")
	ErrInvalidEmail            = errors.New("email is required")
	ErrProviderUnavailable     = errors.New("biometric provider unavailable")
	ErrCredentialBindingFailed = errors.New("biometric enabled but credentials could not be stored")
	ErrDisableFailed           = errors.New("failed to disable biometric authentication")
	ErrBiometricNotEnabled     = errors.New("biometric authentication is not enabled")
	ErrOperationInProgress     = errors.New("another biometric operation is in progress")
)
