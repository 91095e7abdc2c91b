package domain

const (
	SessionDurationMinutes = 60 * 24

	MinPasswordLength = 6
	MaxLoginAttempts  = 5

	AuthTokenKey         = "auth_token"
	SessionKey           = "auth_session"
	BiometricLoginReason = "Sign in with biometrics"
)

type LoginMethod string

const (
	LoginMethodPassword  LoginMethod = "PASSWORD"
	LoginMethodBiometric LoginMethod = "BIOMETRIC"
)
