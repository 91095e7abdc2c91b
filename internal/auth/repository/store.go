package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	"github.com/Suraj999-github/MauiBankApp/pkg/password"
	"github.com/shopspring/decimal"
)

var ErrEmailTaken = errors.New("email is already used by another account")

type SeedUser struct {
	User     domain.UserAuth
	Password string
}

// DemoUsers is the canned account the mock backend signs in.
func DemoUsers() []SeedUser {
	return []SeedUser{
		{
			User: domain.UserAuth{
				ID:            "1",
				Name:          "Suraj Goud",
				Email:         "suraj.goud@eg.com",
				Phone:         "+977 980000000001",
				AccountNumber: "1234567890",
				Balance:       decimal.RequireFromString("12500.75"),
				CreatedAt:     time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
			},
			Password: "password123",
		},
	}
}

// UserStore is an in-memory user directory standing in for the bank's
// backend.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.UserAuth
	idByKey map[string]string
}

func NewUserStore(seed []SeedUser) (*UserStore, error) {
	s := &UserStore{
		byID:    map[string]*domain.UserAuth{},
		idByKey: map[string]string{},
	}
	for _, su := range seed {
		u := su.User
		hash, err := password.HashPassword(su.Password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", u.Email, err)
		}
		u.PasswordHash = hash
		s.byID[u.ID] = &u
		s.idByKey[domain.NormalizeEmail(u.Email)] = u.ID
	}
	return s, nil
}

func (s *UserStore) GetUserByEmail(_ context.Context, email string) (*domain.UserAuth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByKey[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := *s.byID[id]
	return &u, nil
}

func (s *UserStore) GetUserByID(_ context.Context, userID string) (*domain.UserAuth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *UserStore) UpdateLastLoginAt(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// UpdateProfile replaces the contact fields of an account and keeps the
// email index in step.
func (s *UserStore) UpdateProfile(_ context.Context, userID, name, email, phone string) (*domain.UserAuth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	newKey := domain.NormalizeEmail(email)
	oldKey := domain.NormalizeEmail(u.Email)
	if newKey != oldKey {
		if owner, taken := s.idByKey[newKey]; taken && owner != userID {
			return nil, ErrEmailTaken
		}
		delete(s.idByKey, oldKey)
		s.idByKey[newKey] = userID
	}

	u.Name = name
	u.Email = email
	u.Phone = phone
	out := *u
	return &out, nil
}
