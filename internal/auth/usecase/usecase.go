package usecase

import (
	"context"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
)

//go:generate mockgen -destination=../test/mock_auth_usecase.go -package=test github.com/Suraj999-github/MauiBankApp/internal/auth/usecase AuthUsecase
type AuthUsecase interface {
	LoginUser(ctx context.Context, input LoginUserInput) (LoginUserOutput, error)
	LoginWithBiometric(ctx context.Context, input BiometricLoginInput) (LoginUserOutput, error)
	LogoutUser(ctx context.Context) (LogoutOutput, error)
	CurrentSession(ctx context.Context) (*domain.Session, error)
	IsAuthenticated(ctx context.Context) bool
}
