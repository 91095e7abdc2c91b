package test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/platform"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/repository"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/usecase"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func init() {
	logger.Init()
}

func clock() time.Time {
	return fixedNow
}

func setupCoordinator(t *testing.T, p platform.Platform) (*MockProvider, *repository.MemoryStore, usecase.BiometricUsecase) {
	ctrl := gomock.NewController(t)
	provider := NewMockProvider(ctrl)
	provider.EXPECT().Platform().Return(p).AnyTimes()

	store := repository.NewMemoryStore()
	coordinator := usecase.NewCoordinator(provider, store, usecase.WithClock(clock))
	return provider, store, coordinator
}

func setupSimulated(opts ...platform.SimulatedOption) (*platform.SimulatedProvider, *repository.MemoryStore, usecase.BiometricUsecase) {
	provider := platform.NewSimulatedProvider(opts...)
	store := repository.NewMemoryStore()
	coordinator := usecase.NewCoordinator(provider, store, usecase.WithClock(clock))
	return provider, store, coordinator
}

func markEnabled(t *testing.T, store repository.CredentialStore) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), domain.KeyEnabled, domain.EnabledFlagValue))
}

func TestDisable_ClearsEnabledFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, c usecase.BiometricUsecase, store *repository.MemoryStore)
	}{
		{
			name:  "never enabled",
			setup: func(context.Context, usecase.BiometricUsecase, *repository.MemoryStore) {},
		},
		{
			name: "enabled through a challenge",
			setup: func(ctx context.Context, c usecase.BiometricUsecase, _ *repository.MemoryStore) {
				c.Enable(ctx, "reason")
			},
		},
		{
			name: "enabled with bound credentials",
			setup: func(ctx context.Context, c usecase.BiometricUsecase, _ *repository.MemoryStore) {
				c.Enable(ctx, "reason")
				c.StoreCredentials(ctx, "1", "suraj.goud@eg.com")
			},
		},
		{
			name: "credentials without flag",
			setup: func(ctx context.Context, c usecase.BiometricUsecase, _ *repository.MemoryStore) {
				c.StoreCredentials(ctx, "1", "suraj.goud@eg.com")
			},
		},
		{
			name: "stale flag value",
			setup: func(ctx context.Context, _ usecase.BiometricUsecase, store *repository.MemoryStore) {
				_ = store.Set(ctx, domain.KeyEnabled, "yes")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			_, store, coordinator := setupSimulated()
			tt.setup(ctx, coordinator, store)

			assert.True(t, coordinator.Disable(ctx))
			assert.False(t, coordinator.IsEnabled(ctx))
			assert.Zero(t, store.Len())
		})
	}
}

func TestEnable_IsEnabledFollowsOutcome(t *testing.T) {
	tests := []struct {
		name   string
		result platform.Result
	}{
		{name: "success", result: platform.Result{Success: true}},
		{name: "canceled", result: platform.Result{Canceled: true}},
		{name: "lockout", result: platform.Failure(platform.AndroidErrorLockout, "")},
		{name: "no biometrics", result: platform.Failure(platform.AndroidErrorNoBiometrics, "")},
		{name: "no code", result: platform.Result{Message: "Fingerprint not recognized"}},
		{name: "unknown code", result: platform.Failure(42, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			_, _, coordinator := setupSimulated(platform.WithScript(tt.result))

			outcome := coordinator.Enable(ctx, "Confirm biometric")

			assert.True(t, outcome.Valid())
			assert.Equal(t, outcome.Succeeded, coordinator.IsEnabled(ctx))
		})
	}
}

func TestAuthenticate_NotEnabledNeverCallsProvider(t *testing.T) {
	t.Run("mock provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)
		coordinator := usecase.NewCoordinator(provider, repository.NewMemoryStore())

		outcome := coordinator.Authenticate(context.Background(), "Verify your identity")

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, domain.StatusNotEnrolled, outcome.Status)
		assert.Equal(t, domain.MsgNotEnrolled, outcome.Message)
	})

	t.Run("call counts", func(t *testing.T) {
		provider, _, coordinator := setupSimulated()

		for range 3 {
			outcome := coordinator.Authenticate(context.Background(), "")
			assert.Equal(t, domain.StatusNotEnrolled, outcome.Status)
		}

		assert.Zero(t, provider.Challenges())
		assert.Zero(t, provider.AvailabilityChecks())
	})
}

type codeCase struct {
	code int
	want domain.Status
}

func assertCodeMapping(t *testing.T, p platform.Platform, cases []codeCase) {
	t.Helper()
	for _, tc := range cases {
		provider, store, coordinator := setupCoordinator(t, p)
		markEnabled(t, store)

		provider.EXPECT().CheckAvailability(gomock.Any()).Return(true, nil)
		provider.EXPECT().
			Challenge(gomock.Any(), domain.ChallengeTitle, "reason").
			Return(platform.Failure(tc.code, ""), nil)

		outcome := coordinator.Authenticate(context.Background(), "reason")

		assert.False(t, outcome.Succeeded, "code %d", tc.code)
		assert.Equal(t, tc.want, outcome.Status, "code %d", tc.code)
		assert.Equal(t, tc.want.DefaultMessage(), outcome.Message, "code %d", tc.code)
		assert.Nil(t, outcome.CompletedAt)
	}
}

func TestChallenge_AndroidCodeTable(t *testing.T) {
	assertCodeMapping(t, platform.PlatformAndroid, []codeCase{
		{platform.AndroidErrorHwUnavailable, domain.StatusNotAvailable},
		{platform.AndroidErrorUnableToProcess, domain.StatusError},
		{platform.AndroidErrorTimeout, domain.StatusTimeout},
		{platform.AndroidErrorNoSpace, domain.StatusError},
		{platform.AndroidErrorCanceled, domain.StatusUserCanceled},
		{platform.AndroidErrorLockout, domain.StatusLockedOut},
		{platform.AndroidErrorVendor, domain.StatusError},
		{platform.AndroidErrorLockoutPermanent, domain.StatusLockedOut},
		{platform.AndroidErrorUserCanceled, domain.StatusUserCanceled},
		{platform.AndroidErrorNoBiometrics, domain.StatusNotEnrolled},
		{platform.AndroidErrorHwNotPresent, domain.StatusNotAvailable},
		{platform.AndroidErrorNegativeButton, domain.StatusUserCanceled},
		{platform.AndroidErrorNoDeviceCredential, domain.StatusError},
		{platform.AndroidErrorSecurityUpdateRequired, domain.StatusError},
		{0, domain.StatusError},
		{6, domain.StatusError},
		{-1, domain.StatusError},
		{999, domain.StatusError},
	})
}

func TestChallenge_IOSCodeTable(t *testing.T) {
	assertCodeMapping(t, platform.PlatformIOS, []codeCase{
		{platform.IOSErrorAuthenticationFailed, domain.StatusFailed},
		{platform.IOSErrorUserCancel, domain.StatusUserCanceled},
		{platform.IOSErrorUserFallback, domain.StatusUserCanceled},
		{platform.IOSErrorSystemCancel, domain.StatusUserCanceled},
		{platform.IOSErrorPasscodeNotSet, domain.StatusNotEnrolled},
		{platform.IOSErrorBiometryNotAvailable, domain.StatusNotAvailable},
		{platform.IOSErrorBiometryNotEnrolled, domain.StatusNotEnrolled},
		{platform.IOSErrorBiometryLockout, domain.StatusLockedOut},
		{platform.IOSErrorAppCancel, domain.StatusUserCanceled},
		{platform.IOSErrorInvalidContext, domain.StatusError},
		{platform.IOSErrorNotInteractive, domain.StatusError},
		{0, domain.StatusError},
		{7, domain.StatusError},
		{-11, domain.StatusError},
	})
}

func TestChallenge_PlatformMessageIsKept(t *testing.T) {
	provider, store, coordinator := setupCoordinator(t, platform.PlatformAndroid)
	markEnabled(t, store)

	provider.EXPECT().CheckAvailability(gomock.Any()).Return(true, nil)
	provider.EXPECT().
		Challenge(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(platform.Failure(platform.AndroidErrorLockout, "Too many attempts. Try again later."), nil)

	outcome := coordinator.Authenticate(context.Background(), "reason")

	assert.Equal(t, domain.StatusLockedOut, outcome.Status)
	assert.Equal(t, "Too many attempts. Try again later.", outcome.Message)
}

func TestChallenge_StartFailureIsError(t *testing.T) {
	provider, store, coordinator := setupCoordinator(t, platform.PlatformIOS)
	markEnabled(t, store)

	provider.EXPECT().CheckAvailability(gomock.Any()).Return(true, nil)
	provider.EXPECT().
		Challenge(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(platform.Result{}, errors.New("context invalidated"))

	outcome := coordinator.Authenticate(context.Background(), "reason")

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, domain.StatusError, outcome.Status)
	assert.Equal(t, "Failed to start biometric: context invalidated", outcome.Message)
}

func TestCredentials_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, _, coordinator := setupSimulated()

	userID, email := coordinator.GetStoredCredentials(ctx)
	assert.Empty(t, userID)
	assert.Empty(t, email)

	require.True(t, coordinator.StoreCredentials(ctx, "1", "suraj.goud@eg.com"))

	userID, email = coordinator.GetStoredCredentials(ctx)
	assert.Equal(t, "1", userID)
	assert.Equal(t, "suraj.goud@eg.com", email)
}

func TestEnable_ClearsIdentityStoredWhileDisabled(t *testing.T) {
	ctx := context.Background()
	_, _, coordinator := setupSimulated()

	require.True(t, coordinator.StoreCredentials(ctx, "1", "suraj.goud@eg.com"))
	require.True(t, coordinator.Enable(ctx, "reason").Succeeded)

	userID, email := coordinator.GetStoredCredentials(ctx)
	assert.Empty(t, userID)
	assert.Empty(t, email)
	assert.False(t, coordinator.Binding(ctx).HasCredentials())
}

func TestEnable_KeepsIdentityWhenAlreadyEnabled(t *testing.T) {
	ctx := context.Background()
	_, _, coordinator := setupSimulated()

	require.True(t, coordinator.Enable(ctx, "reason").Succeeded)
	require.True(t, coordinator.StoreCredentials(ctx, "1", "suraj.goud@eg.com"))
	require.True(t, coordinator.Enable(ctx, "reason").Succeeded)

	userID, email := coordinator.GetStoredCredentials(ctx)
	assert.Equal(t, "1", userID)
	assert.Equal(t, "suraj.goud@eg.com", email)
}

func TestEnable_StaleIdentityClearFailureIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.KeyEnabled).Return("", false, nil).AnyTimes()
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserID).Return(errors.New("keychain locked"))

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store)

	outcome := coordinator.Enable(context.Background(), "reason")
	assert.Equal(t, domain.StatusError, outcome.Status)
	assert.False(t, coordinator.IsEnabled(context.Background()))
}

func TestStoreCredentials_RejectsEmpty(t *testing.T) {
	ctx := context.Background()
	_, store, coordinator := setupSimulated()

	assert.False(t, coordinator.StoreCredentials(ctx, "", "suraj.goud@eg.com"))
	assert.False(t, coordinator.StoreCredentials(ctx, "1", "   "))
	assert.Zero(t, store.Len())
}

func TestStoreCredentials_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Set(gomock.Any(), domain.KeyUserID, "1").Return(errors.New("keychain locked"))

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store)

	assert.False(t, coordinator.StoreCredentials(context.Background(), "1", "suraj.goud@eg.com"))
}

func TestGetStoredCredentials_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.KeyUserID).Return("", false, errors.New("keychain locked"))

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store)

	userID, email := coordinator.GetStoredCredentials(context.Background())
	assert.Empty(t, userID)
	assert.Empty(t, email)
}

func TestDisable_Twice(t *testing.T) {
	ctx := context.Background()
	_, _, coordinator := setupSimulated()

	require.True(t, coordinator.Enable(ctx, "reason").Succeeded)

	assert.True(t, coordinator.Disable(ctx))
	assert.True(t, coordinator.Disable(ctx))
	assert.False(t, coordinator.IsEnabled(ctx))
}

func TestDisable_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Remove(gomock.Any(), domain.KeyEnabled).Return(errors.New("keychain locked"))
	store.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store)

	assert.False(t, coordinator.Disable(context.Background()))
}

func TestEndToEnd_EnableBindAuthenticate(t *testing.T) {
	ctx := context.Background()
	provider, _, coordinator := setupSimulated()

	require.True(t, coordinator.IsAvailable(ctx))
	require.False(t, coordinator.IsEnabled(ctx))

	outcome := coordinator.Enable(ctx, "reason")
	require.True(t, outcome.Succeeded)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
	assert.Equal(t, domain.MsgEnabled, outcome.Message)
	require.NotNil(t, outcome.CompletedAt)
	assert.Equal(t, fixedNow, *outcome.CompletedAt)
	assert.True(t, coordinator.IsEnabled(ctx))

	userID, email := coordinator.GetStoredCredentials(ctx)
	assert.Empty(t, userID)
	assert.Empty(t, email)

	require.True(t, coordinator.StoreCredentials(ctx, "1", "suraj.goud@eg.com"))

	outcome = coordinator.Authenticate(ctx, "reason")
	assert.True(t, outcome.Succeeded)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
	assert.True(t, outcome.Valid())
	assert.Equal(t, 2, provider.Challenges())

	binding := coordinator.Binding(ctx)
	assert.True(t, binding.Enabled)
	assert.Equal(t, "1", binding.UserID)
	assert.Equal(t, "suraj.goud@eg.com", binding.Email)
	assert.Equal(t, domain.KindFingerprint, binding.Kind)
	require.NotNil(t, binding.EnabledAt)
	assert.True(t, fixedNow.Equal(*binding.EnabledAt))
	require.NotNil(t, binding.LastAuthAt)
	assert.True(t, fixedNow.Equal(*binding.LastAuthAt))
}

func TestEndToEnd_UnavailableLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	provider, store, coordinator := setupSimulated(platform.WithAvailability(false))

	assert.False(t, coordinator.IsAvailable(ctx))
	assert.Equal(t, domain.StateUnavailable, coordinator.State())

	outcome := coordinator.Enable(ctx, "reason")

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, domain.StatusNotAvailable, outcome.Status)
	assert.Equal(t, domain.MsgNotAvailable, outcome.Message)
	assert.Zero(t, store.Len())
	assert.Zero(t, provider.Challenges())
	assert.False(t, coordinator.IsEnabled(ctx))
}

func TestIsAvailable_ProviderErrorReadsUnavailable(t *testing.T) {
	provider, _, coordinator := setupCoordinator(t, platform.PlatformAndroid)
	provider.EXPECT().CheckAvailability(gomock.Any()).Return(false, errors.New("binder died"))

	assert.False(t, coordinator.IsAvailable(context.Background()))
	assert.Equal(t, domain.StateUnavailable, coordinator.State())
}

func TestState_Transitions(t *testing.T) {
	ctx := context.Background()
	_, _, coordinator := setupSimulated()

	assert.Equal(t, domain.StateUnchecked, coordinator.State())

	require.True(t, coordinator.IsAvailable(ctx))
	assert.Equal(t, domain.StateAvailableDisabled, coordinator.State())

	require.True(t, coordinator.Enable(ctx, "reason").Succeeded)
	assert.Equal(t, domain.StateAvailableEnabled, coordinator.State())

	require.True(t, coordinator.Disable(ctx))
	assert.Equal(t, domain.StateAvailableDisabled, coordinator.State())
}

func TestEnable_StoreFailureIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.KeyEnabled).Return("", false, nil).AnyTimes()
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserID).Return(nil)
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserEmail).Return(nil)
	store.EXPECT().Set(gomock.Any(), domain.KeyEnrolledAt, gomock.Any()).Return(errors.New("disk full"))

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store)

	outcome := coordinator.Enable(context.Background(), "reason")

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, domain.StatusError, outcome.Status)
	assert.Equal(t, domain.MsgEnableStoreFailed, outcome.Message)
	assert.False(t, coordinator.IsEnabled(context.Background()))
}

func TestEnable_FlagWriteFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.KeyEnabled).Return("", false, nil).AnyTimes()
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserID).Return(nil)
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserEmail).Return(nil)
	store.EXPECT().Set(gomock.Any(), domain.KeyEnrolledAt, gomock.Any()).Return(nil)
	store.EXPECT().Set(gomock.Any(), domain.KeyKind, string(domain.KindFingerprint)).Return(nil)
	store.EXPECT().Set(gomock.Any(), domain.KeyEnabled, domain.EnabledFlagValue).Return(errors.New("disk full"))
	store.EXPECT().Remove(gomock.Any(), domain.KeyEnrolledAt).Return(nil)
	store.EXPECT().Remove(gomock.Any(), domain.KeyKind).Return(nil)

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store)

	outcome := coordinator.Enable(context.Background(), "reason")
	assert.Equal(t, domain.StatusError, outcome.Status)
}

func TestAuthenticate_LastAuthWriteFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.KeyEnabled).Return(domain.EnabledFlagValue, true, nil).AnyTimes()
	store.EXPECT().Set(gomock.Any(), domain.KeyLastAuthAt, gomock.Any()).Return(errors.New("disk full"))

	coordinator := usecase.NewCoordinator(platform.NewSimulatedProvider(), store, usecase.WithClock(clock))

	outcome := coordinator.Authenticate(context.Background(), "reason")
	assert.True(t, outcome.Succeeded)
}

func TestChallenge_ConcurrentRequestIsBusy(t *testing.T) {
	provider, store, coordinator := setupCoordinator(t, platform.PlatformAndroid)
	markEnabled(t, store)

	started := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().CheckAvailability(gomock.Any()).Return(true, nil)
	provider.EXPECT().
		Challenge(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (platform.Result, error) {
			close(started)
			<-release
			return platform.Result{Success: true}, nil
		})

	var wg sync.WaitGroup
	var first domain.AuthOutcome
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = coordinator.Authenticate(context.Background(), "reason")
	}()

	<-started
	busy := coordinator.Enable(context.Background(), "reason")
	assert.False(t, busy.Succeeded)
	assert.Equal(t, domain.StatusBusy, busy.Status)
	assert.Equal(t, domain.MsgBusy, busy.Message)

	busy = coordinator.Authenticate(context.Background(), "reason")
	assert.Equal(t, domain.StatusBusy, busy.Status)

	close(release)
	wg.Wait()
	assert.True(t, first.Succeeded)
}

func TestChallenge_ContextEndsPrompt(t *testing.T) {
	t.Run("cancel is a user cancellation", func(t *testing.T) {
		_, store, coordinator := setupSimulated(platform.WithChallengeDelay(time.Hour))
		markEnabled(t, store)

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)

		outcome := coordinator.Authenticate(ctx, "reason")
		assert.Equal(t, domain.StatusUserCanceled, outcome.Status)
		assert.Equal(t, domain.MsgUserCanceled, outcome.Message)
	})

	t.Run("deadline is a timeout", func(t *testing.T) {
		_, store, coordinator := setupSimulated(platform.WithChallengeDelay(time.Hour))
		markEnabled(t, store)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		outcome := coordinator.Authenticate(ctx, "reason")
		assert.Equal(t, domain.StatusTimeout, outcome.Status)
	})

	t.Run("gate is released afterwards", func(t *testing.T) {
		provider, store, coordinator := setupSimulated(platform.WithChallengeDelay(time.Hour))
		markEnabled(t, store)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, domain.StatusUserCanceled, coordinator.Authenticate(ctx, "reason").Status)
		assert.NotEqual(t, domain.StatusBusy, coordinator.Authenticate(ctx, "reason").Status)
		assert.Equal(t, 2, provider.Challenges())
	})
}

func TestBiometricKindLabel(t *testing.T) {
	t.Run("provider label", func(t *testing.T) {
		provider, _, coordinator := setupCoordinator(t, platform.PlatformIOS)
		provider.EXPECT().KindLabel(gomock.Any()).Return("Face ID", nil)
		assert.Equal(t, "Face ID", coordinator.BiometricKindLabel(context.Background()))
	})

	t.Run("fallback on error", func(t *testing.T) {
		provider, _, coordinator := setupCoordinator(t, platform.PlatformIOS)
		provider.EXPECT().KindLabel(gomock.Any()).Return("", errors.New("no context"))
		assert.Equal(t, "Biometric", coordinator.BiometricKindLabel(context.Background()))
	})
}

func TestMetrics_CountOperations(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := usecase.NewMetrics(registry)
	provider := platform.NewSimulatedProvider(platform.WithScript(platform.Result{Canceled: true}))
	coordinator := usecase.NewCoordinator(provider, repository.NewMemoryStore(), usecase.WithMetrics(metrics))

	ctx := context.Background()
	coordinator.Enable(ctx, "reason")
	coordinator.Enable(ctx, "reason")
	coordinator.Authenticate(ctx, "reason")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("enable", string(domain.StatusUserCanceled))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("enable", string(domain.StatusSuccess))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("authenticate", string(domain.StatusSuccess))))
	assert.Zero(t, testutil.ToFloat64(metrics.BusyRejections))
}
