package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/auth/repository"
	biousecase "github.com/Suraj999-github/MauiBankApp/internal/biometric/usecase"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"
	"github.com/Suraj999-github/MauiBankApp/pkg/password"

	"github.com/bluele/gcache"
	"github.com/google/uuid"
)

type Option func(*AuthService)

// WithLatency simulates the backend round trip before each login answer.
func WithLatency(d time.Duration) Option {
	return func(s *AuthService) { s.latency = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

func WithMetrics(m *Metrics) Option {
	return func(s *AuthService) { s.metrics = m }
}

type AuthService struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	biometric biousecase.BiometricUsecase
	attempts  gcache.Cache
	latency   time.Duration
	now       func() time.Time
	metrics   *Metrics
}

func NewAuthService(u repository.UserRepository, s repository.SessionRepository, b biousecase.BiometricUsecase, opts ...Option) AuthUsecase {
	svc := &AuthService{
		users:     u,
		sessions:  s,
		biometric: b,
		attempts:  gcache.New(100).LRU().Expiration(time.Minute * 15).Build(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *AuthService) LoginUser(ctx context.Context, input LoginUserInput) (LoginUserOutput, error) {
	out, err := s.loginUser(ctx, input)
	s.metrics.observe(string(domain.LoginMethodPassword), resultLabel(err))
	return out, err
}

func (s *AuthService) loginUser(ctx context.Context, input LoginUserInput) (LoginUserOutput, error) {
	if err := domain.ValidateLogin(input.Email, input.Password); err != nil {
		return LoginUserOutput{}, err
	}

	key := domain.NormalizeEmail(input.Email)
	attempts, err := s.attempts.Get(key)
	if err == nil && attempts.(int) >= domain.MaxLoginAttempts {
		logger.Error("Rate limit exceeded for login attempts")
		return LoginUserOutput{}, domain.ErrTooManyLoginAttempts
	}

	if err := s.wait(ctx); err != nil {
		return LoginUserOutput{}, err
	}

	user, err := s.users.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("Repository error fetching user:", err)
		}
		s.recordFailedAttempt(key, attempts)
		return LoginUserOutput{}, domain.ErrInvalidCredentials
	}

	match, err := password.ComparePassword(user.PasswordHash, input.Password)
	if err != nil || !match {
		s.recordFailedAttempt(key, attempts)
		return LoginUserOutput{}, domain.ErrInvalidCredentials
	}

	s.attempts.Remove(key)
	return s.createSession(ctx, user, domain.LoginMethodPassword)
}

func (s *AuthService) LoginWithBiometric(ctx context.Context, input BiometricLoginInput) (LoginUserOutput, error) {
	out, err := s.loginWithBiometric(ctx, input)
	s.metrics.observe(string(domain.LoginMethodBiometric), resultLabel(err))
	return out, err
}

func (s *AuthService) loginWithBiometric(ctx context.Context, input BiometricLoginInput) (LoginUserOutput, error) {
	reason := input.Reason
	if reason == "" {
		reason = domain.BiometricLoginReason
	}

	outcome := s.biometric.Authenticate(ctx, reason)
	if !outcome.Succeeded {
		return LoginUserOutput{Outcome: &outcome, Message: outcome.Message}, &BiometricLoginError{Outcome: outcome}
	}

	userID, email := s.biometric.GetStoredCredentials(ctx)
	if userID == "" || email == "" {
		logger.Error("Biometric check passed but no credentials are bound")
		return LoginUserOutput{Outcome: &outcome}, domain.ErrBiometricNotBound
	}

	if err := s.wait(ctx); err != nil {
		return LoginUserOutput{}, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("Bound biometric user lookup failed", "error", err)
		return LoginUserOutput{Outcome: &outcome}, domain.ErrBiometricMismatch
	}
	if domain.NormalizeEmail(user.Email) != domain.NormalizeEmail(email) {
		logger.Error("Bound biometric email does not match account")
		return LoginUserOutput{Outcome: &outcome}, domain.ErrBiometricMismatch
	}

	out, err := s.createSession(ctx, user, domain.LoginMethodBiometric)
	if err != nil {
		return LoginUserOutput{}, err
	}
	out.Outcome = &outcome
	return out, nil
}

func (s *AuthService) LogoutUser(ctx context.Context) (LogoutOutput, error) {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		logger.Error("Failed to delete session during logout", "error", err)
		return LogoutOutput{}, fmt.Errorf("failed to logout: %w", err)
	}
	return LogoutOutput{Message: "Logged out successfully"}, nil
}

func (s *AuthService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	_, err := s.CurrentSession(ctx)
	return err == nil
}

func (s *AuthService) createSession(ctx context.Context, user *domain.UserAuth, method domain.LoginMethod) (LoginUserOutput, error) {
	now := s.now()
	if err := s.users.UpdateLastLoginAt(ctx, user.ID, now); err != nil {
		logger.Error("Failed to update last login timestamp:", err)
	}

	token, err := domain.GenerateSecureToken()
	if err != nil {
		logger.Error("Failed to generate session token:", err)
		return LoginUserOutput{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		Method:    method,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.SessionDurationMinutes * time.Minute),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		logger.Error("Failed to store session in secure storage", "error", err)
		return LoginUserOutput{}, fmt.Errorf("failed to store session: %w", err)
	}

	return LoginUserOutput{
		User: UserInfo{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			AccountNumber: user.AccountNumber,
		},
		Session: SessionInfo{
			Token:     session.Token,
			Method:    string(method),
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		},
		Message: "Login successful",
	}, nil
}

func (s *AuthService) recordFailedAttempt(key string, previous any) {
	current := 1
	if n, ok := previous.(int); ok {
		current = n + 1
	}
	if err := s.attempts.Set(key, current); err != nil {
		logger.Error("Cache error updating login attempts")
	}
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	return "failure"
}
