package usecase

import (
	"context"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

// BiometricUsecase is what the login and settings controllers consume.
// None of its methods return errors: store and platform faults surface as
// safe defaults or as an AuthOutcome carrying a displayable message.
//
//go:generate mockgen -destination=../test/mock_biometric_usecase.go -package=test github.com/Suraj999-github/MauiBankApp/internal/biometric/usecase BiometricUsecase
type BiometricUsecase interface {
	IsAvailable(ctx context.Context) bool
	IsEnabled(ctx context.Context) bool
	Enable(ctx context.Context, reason string) domain.AuthOutcome
	Disable(ctx context.Context) bool
	Authenticate(ctx context.Context, reason string) domain.AuthOutcome
	StoreCredentials(ctx context.Context, userID, email string) bool
	GetStoredCredentials(ctx context.Context) (string, string)
	BiometricKindLabel(ctx context.Context) string
	State() domain.State
	Binding(ctx context.Context) domain.Binding
}
