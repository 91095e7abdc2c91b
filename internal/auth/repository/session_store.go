package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	biometricrepo "github.com/Suraj999-github/MauiBankApp/internal/biometric/repository"
)

// SecureSessionStore keeps the session in the device's secure storage:
// the bare token under auth_token and the full record under auth_session.
type SecureSessionStore struct {
	store biometricrepo.CredentialStore
}

func NewSecureSessionStore(store biometricrepo.CredentialStore) SessionRepository {
	return &SecureSessionStore{store: store}
}

func (s *SecureSessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Set(ctx, domain.SessionKey, string(b)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := s.store.Set(ctx, domain.AuthTokenKey, session.Token); err != nil {
		_ = s.store.Remove(ctx, domain.SessionKey)
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *SecureSessionStore) GetSession(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := s.store.Get(ctx, domain.SessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, domain.ErrSessionNotFound
	}

	token, ok, err := s.store.Get(ctx, domain.AuthTokenKey)
	if err != nil {
		return nil, err
	}
	if !ok || token != session.Token {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SecureSessionStore) DeleteSession(ctx context.Context) error {
	tokenErr := s.store.Remove(ctx, domain.AuthTokenKey)
	sessionErr := s.store.Remove(ctx, domain.SessionKey)
	if tokenErr != nil {
		return tokenErr
	}
	return sessionErr
}
