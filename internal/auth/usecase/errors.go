package usecase

import (
	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	biodomain "github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

// BiometricLoginError reports a biometric challenge that did not succeed.
// Its message is the outcome message, meant to be shown verbatim.
type BiometricLoginError struct {
	Outcome biodomain.AuthOutcome
}

func (e *BiometricLoginError) Error() string {
	return e.Outcome.Message
}

func (e *BiometricLoginError) Unwrap() error {
	return domain.ErrBiometricFailed
}
