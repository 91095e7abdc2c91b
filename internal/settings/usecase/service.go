package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	biousecase "github.com/Suraj999-github/MauiBankApp/internal/biometric/usecase"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"
)

var ErrNotSignedIn = errors.New("sign in before enabling biometric login")

type settingsService struct {
	biometric biousecase.BiometricUsecase
	sessions  SessionSource
	loading   atomic.Bool
}

func NewSecuritySettingsService(b biousecase.BiometricUsecase, s SessionSource) SecuritySettingsUsecase {
	return &settingsService{
		biometric: b,
		sessions:  s,
	}
}

func (s *settingsService) Load(ctx context.Context) SecuritySettings {
	out := SecuritySettings{
		KindLabel: domain.KindUnspecified.Label(),
	}

	out.Available = s.biometric.IsAvailable(ctx)
	out.State = s.biometric.State()
	if !out.Available {
		return out
	}

	out.Enabled = s.biometric.IsEnabled(ctx)
	out.KindLabel = s.biometric.BiometricKindLabel(ctx)
	if out.Enabled {
		out.EnrolledAt = s.biometric.Binding(ctx).EnabledAt
	}
	return out
}

func (s *settingsService) ToggleBiometric(ctx context.Context, input ToggleBiometricInput) (ToggleBiometricOutput, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return ToggleBiometricOutput{}, domain.ErrOperationInProgress
	}
	defer s.loading.Store(false)

	if input.Enable {
		return s.enable(ctx, input.Reason)
	}
	return s.disable(ctx)
}

func (s *settingsService) enable(ctx context.Context, reason string) (ToggleBiometricOutput, error) {
	session, err := s.sessions.CurrentSession(ctx)
	if err != nil {
		return ToggleBiometricOutput{}, ErrNotSignedIn
	}

	outcome := s.biometric.Enable(ctx, reason)
	if !outcome.Succeeded {
		return ToggleBiometricOutput{
			Enabled: false,
			Outcome: &outcome,
			Message: outcome.Message,
		}, nil
	}

	if !s.biometric.StoreCredentials(ctx, session.UserID, session.Email) {
		logger.Error("Biometric enabled but credential binding failed, rolling back")
		if !s.biometric.Disable(ctx) {
			logger.Error("Rollback of biometric enable failed")
		}
		return ToggleBiometricOutput{Enabled: s.biometric.IsEnabled(ctx), Outcome: &outcome}, domain.ErrCredentialBindingFailed
	}

	label := s.biometric.BiometricKindLabel(ctx)
	return ToggleBiometricOutput{
		Enabled:    true,
		EnrolledAt: outcome.CompletedAt,
		Outcome:    &outcome,
		Message:    fmt.Sprintf("%s authentication enabled successfully!", label),
	}, nil
}

func (s *settingsService) disable(ctx context.Context) (ToggleBiometricOutput, error) {
	if !s.biometric.Disable(ctx) {
		return ToggleBiometricOutput{
			Enabled: true,
			Message: "Failed to disable biometric authentication",
		}, domain.ErrDisableFailed
	}

	label := s.biometric.BiometricKindLabel(ctx)
	return ToggleBiometricOutput{
		Enabled: false,
		Message: fmt.Sprintf("%s authentication disabled", label),
	}, nil
}

func (s *settingsService) TestAuthentication(ctx context.Context) (domain.AuthOutcome, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return domain.AuthOutcome{}, domain.ErrOperationInProgress
	}
	defer s.loading.Store(false)

	if !s.biometric.IsEnabled(ctx) {
		return domain.AuthOutcome{}, domain.ErrBiometricNotEnabled
	}
	return s.biometric.Authenticate(ctx, domain.DefaultTestReason), nil
}
