package repository

import (
	"context"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
)

//go:generate mockgen -destination=../test/mock_user_repository.go -package=test github.com/Suraj999-github/MauiBankApp/internal/auth/repository UserRepository
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.UserAuth, error)
	GetUserByID(ctx context.Context, userID string) (*domain.UserAuth, error)
	UpdateLastLoginAt(ctx context.Context, userID string, at time.Time) error
}

// SessionRepository holds the single signed-in session of this device.
//
//go:generate mockgen -destination=../test/mock_session_repository.go -package=test github.com/Suraj999-github/MauiBankApp/internal/auth/repository SessionRepository
type SessionRepository interface {
	SaveSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context) (*domain.Session, error)
	DeleteSession(ctx context.Context) error
}
