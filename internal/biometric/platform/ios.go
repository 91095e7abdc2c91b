package platform

import "github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"

// LocalAuthentication LAError codes.
const (
	IOSErrorAuthenticationFailed = -1
	IOSErrorUserCancel           = -2
	IOSErrorUserFallback         = -3
	IOSErrorSystemCancel         = -4
	IOSErrorPasscodeNotSet       = -5
	IOSErrorBiometryNotAvailable = -6
	IOSErrorBiometryNotEnrolled  = -7
	IOSErrorBiometryLockout      = -8
	IOSErrorAppCancel            = -9
	IOSErrorInvalidContext       = -10
	IOSErrorNotInteractive       = -1004
)

var iosStatusByCode = map[int]domain.Status{
	IOSErrorAuthenticationFailed: domain.StatusFailed,
	IOSErrorUserCancel:           domain.StatusUserCanceled,
	IOSErrorUserFallback:         domain.StatusUserCanceled,
	IOSErrorSystemCancel:         domain.StatusUserCanceled,
	IOSErrorPasscodeNotSet:       domain.StatusNotEnrolled,
	IOSErrorBiometryNotAvailable: domain.StatusNotAvailable,
	IOSErrorBiometryNotEnrolled:  domain.StatusNotEnrolled,
	IOSErrorBiometryLockout:      domain.StatusLockedOut,
	IOSErrorAppCancel:            domain.StatusUserCanceled,
	IOSErrorInvalidContext:       domain.StatusError,
	IOSErrorNotInteractive:       domain.StatusError,
}
