package repository

import (
	"context"
	"errors"

	authdomain "github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	authrepo "github.com/Suraj999-github/MauiBankApp/internal/auth/repository"
	"github.com/Suraj999-github/MauiBankApp/internal/users/domain"
)

// UserStore exposes the profile view of the accounts held by the auth
// directory.
type UserStore struct {
	accounts *authrepo.UserStore
}

func NewUserStore(accounts *authrepo.UserStore) UserRepository {
	return &UserStore{
		accounts: accounts,
	}
}

func (s *UserStore) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.accounts.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toProfile(u), nil
}

func (s *UserStore) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	u, err := s.accounts.UpdateProfile(ctx, user.ID, user.Name, user.Email, user.Phone)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUserNotFound):
			return nil, domain.ErrUserNotFound
		case errors.Is(err, authrepo.ErrEmailTaken):
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return toProfile(u), nil
}

func toProfile(u *authdomain.UserAuth) *domain.User {
	return &domain.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		AccountNumber: u.AccountNumber,
		Balance:       u.Balance,
		CreatedAt:     u.CreatedAt,
		LastLoginAt:   u.LastLoginAt,
	}
}
