package usecase

import (
	"context"

	authdomain "github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

//go:generate mockgen -destination=../test/mock_settings_usecase.go -package=test github.com/Suraj999-github/MauiBankApp/internal/settings/usecase SecuritySettingsUsecase
type SecuritySettingsUsecase interface {
	Load(ctx context.Context) SecuritySettings
	ToggleBiometric(ctx context.Context, input ToggleBiometricInput) (ToggleBiometricOutput, error)
	TestAuthentication(ctx context.Context) (domain.AuthOutcome, error)
}

// SessionSource yields the signed-in identity that biometric login is bound to.
type SessionSource interface {
	CurrentSession(ctx context.Context) (*authdomain.Session, error)
}
