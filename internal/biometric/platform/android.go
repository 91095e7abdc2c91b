package platform

import "github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"

// BiometricPrompt error codes (androidx.biometric).
const (
	AndroidErrorHwUnavailable          = 1
	AndroidErrorUnableToProcess        = 2
	AndroidErrorTimeout                = 3
	AndroidErrorNoSpace                = 4
	AndroidErrorCanceled               = 5
	AndroidErrorLockout                = 7
	AndroidErrorVendor                 = 8
	AndroidErrorLockoutPermanent       = 9
	AndroidErrorUserCanceled           = 10
	AndroidErrorNoBiometrics           = 11
	AndroidErrorHwNotPresent           = 12
	AndroidErrorNegativeButton         = 13
	AndroidErrorNoDeviceCredential     = 14
	AndroidErrorSecurityUpdateRequired = 15
)

var androidStatusByCode = map[int]domain.Status{
	AndroidErrorHwUnavailable:          domain.StatusNotAvailable,
	AndroidErrorUnableToProcess:        domain.StatusError,
	AndroidErrorTimeout:                domain.StatusTimeout,
	AndroidErrorNoSpace:                domain.StatusError,
	AndroidErrorCanceled:               domain.StatusUserCanceled,
	AndroidErrorLockout:                domain.StatusLockedOut,
	AndroidErrorVendor:                 domain.StatusError,
	AndroidErrorLockoutPermanent:       domain.StatusLockedOut,
	AndroidErrorUserCanceled:           domain.StatusUserCanceled,
	AndroidErrorNoBiometrics:           domain.StatusNotEnrolled,
	AndroidErrorHwNotPresent:           domain.StatusNotAvailable,
	AndroidErrorNegativeButton:         domain.StatusUserCanceled,
	AndroidErrorNoDeviceCredential:     domain.StatusError,
	AndroidErrorSecurityUpdateRequired: domain.StatusError,
}
