package domain

const (
	KeyEnabled    = "biometric_enabled"
	KeyEnrolledAt = "biometric_enrolled_at"
	KeyLastAuthAt = "biometric_last_auth_at"
	KeyUserID     = "biometric_user_id"
	KeyUserEmail  = "biometric_user_email"
	KeyKind       = "biometric_kind"

	EnabledFlagValue = "true"

	ChallengeTitle = "Biometric Authentication"

	DefaultEnableReason       = "Confirm biometric to enable login"
	DefaultAuthenticateReason = "Verify your identity"
	DefaultTestReason         = "Test your fingerprint authentication"
)

const (
	MsgAuthenticationSuccessful = "Authentication successful"
	MsgEnabled                  = "Biometric authentication enabled successfully"
	MsgNotAvailable             = "Biometric authentication is not available on this device"
	MsgNotEnrolled              = "Biometric authentication is not enabled"
	MsgUserCanceled             = "Authentication was canceled"
	MsgLockedOut                = "Too many attempts. Biometric authentication is locked"
	MsgTimeout                  = "Authentication timed out. Please try again."
	MsgFailed                   = "Authentication failed. Please try again."
	MsgError                    = "Biometric authentication error"
	MsgBusy                     = "Another biometric prompt is already in progress"
	MsgEnableStoreFailed        = "Failed to save biometric settings"
)
