package repository

import (
	"context"

	"github.com/Suraj999-github/MauiBankApp/internal/users/domain"
)

//go:generate mockgen -destination=../test/mock_user_repository.go -package=test github.com/Suraj999-github/MauiBankApp/internal/users/repository UserRepository
type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}
