package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/platform"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/repository"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"
)

const (
	opAvailable    = "is_available"
	opEnable       = "enable"
	opDisable      = "disable"
	opAuthenticate = "authenticate"
)

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// Coordinator owns the biometric enable/disable/authenticate flow. At
// most one live challenge is outstanding at any time; a second request
// made meanwhile is answered with StatusBusy instead of opening another
// prompt.
type Coordinator struct {
	provider platform.Provider
	bindings *repository.BindingStore
	metrics  *Metrics
	now      func() time.Time

	inFlight atomic.Bool

	mu    sync.RWMutex
	state domain.State
}

func NewCoordinator(p platform.Provider, store repository.CredentialStore, opts ...Option) BiometricUsecase {
	c := &Coordinator{
		provider: p,
		bindings: repository.NewBindingStore(store),
		now:      time.Now,
		state:    domain.StateUnchecked,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) IsAvailable(ctx context.Context) bool {
	available, err := c.provider.CheckAvailability(ctx)
	if err != nil {
		logger.Error("Biometric availability check failed", "platform", c.provider.Platform(), "error", err)
		available = false
	}

	if !available {
		c.setState(domain.StateUnavailable)
		c.metrics.observe(opAvailable, domain.StatusNotAvailable)
		return false
	}

	c.setState(c.availableState(ctx))
	c.metrics.observe(opAvailable, domain.StatusSuccess)
	return true
}

func (c *Coordinator) IsEnabled(ctx context.Context) bool {
	enabled, err := c.bindings.IsEnabled(ctx)
	if err != nil {
		logger.Error("Failed to read biometric enabled flag", "key", domain.KeyEnabled, "error", err)
		return false
	}
	return enabled
}

func (c *Coordinator) Enable(ctx context.Context, reason string) domain.AuthOutcome {
	outcome := c.enable(ctx, reason)
	c.metrics.observe(opEnable, outcome.Status)
	return outcome
}

func (c *Coordinator) enable(ctx context.Context, reason string) domain.AuthOutcome {
	if !c.acquire() {
		return domain.Fail(domain.StatusBusy, "")
	}
	defer c.release()

	if !c.IsAvailable(ctx) {
		return domain.Fail(domain.StatusNotAvailable, "")
	}

	status, msg := c.challenge(ctx, opEnable, withDefault(reason, domain.DefaultEnableReason))
	if status != domain.StatusSuccess {
		return domain.Fail(status, msg)
	}

	kind, err := c.provider.Kind(ctx)
	if err != nil {
		kind = domain.KindUnspecified
	}

	now := c.now()
	if err := c.bindings.Enable(ctx, now, kind); err != nil {
		logger.Error("Failed to persist biometric binding", "error", err)
		return domain.Fail(domain.StatusError, domain.MsgEnableStoreFailed)
	}

	c.setState(domain.StateAvailableEnabled)
	logger.Info("Biometric login enabled", "kind", kind)
	return domain.Succeed(domain.MsgEnabled, now)
}

func (c *Coordinator) Disable(ctx context.Context) bool {
	if err := c.bindings.Disable(ctx); err != nil {
		logger.Error("Failed to remove biometric binding", "error", err)
		c.metrics.observe(opDisable, domain.StatusError)
		return false
	}

	c.mu.Lock()
	if c.state == domain.StateAvailableEnabled {
		c.state = domain.StateAvailableDisabled
	}
	c.mu.Unlock()

	c.metrics.observe(opDisable, domain.StatusSuccess)
	return true
}

func (c *Coordinator) Authenticate(ctx context.Context, reason string) domain.AuthOutcome {
	outcome := c.authenticate(ctx, reason)
	c.metrics.observe(opAuthenticate, outcome.Status)
	return outcome
}

func (c *Coordinator) authenticate(ctx context.Context, reason string) domain.AuthOutcome {
	if !c.IsEnabled(ctx) {
		return domain.Fail(domain.StatusNotEnrolled, domain.MsgNotEnrolled)
	}

	if !c.acquire() {
		return domain.Fail(domain.StatusBusy, "")
	}
	defer c.release()

	if !c.IsAvailable(ctx) {
		return domain.Fail(domain.StatusNotAvailable, "")
	}

	status, msg := c.challenge(ctx, opAuthenticate, withDefault(reason, domain.DefaultAuthenticateReason))
	if status != domain.StatusSuccess {
		return domain.Fail(status, msg)
	}

	now := c.now()
	if err := c.bindings.TouchLastAuth(ctx, now); err != nil {
		logger.Warn("Failed to record last biometric authentication", "key", domain.KeyLastAuthAt, "error", err)
	}
	return domain.Succeed(msg, now)
}

func (c *Coordinator) StoreCredentials(ctx context.Context, userID, email string) bool {
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)
	if userID == "" || email == "" {
		logger.Error("Refusing to store empty biometric credentials")
		return false
	}

	if err := c.bindings.SaveCredentials(ctx, userID, email); err != nil {
		logger.Error("Failed to store biometric credentials", "error", err)
		return false
	}
	return true
}

func (c *Coordinator) GetStoredCredentials(ctx context.Context) (string, string) {
	userID, email, err := c.bindings.Credentials(ctx)
	if err != nil {
		logger.Error("Failed to read biometric credentials", "error", err)
		return "", ""
	}
	return userID, email
}

func (c *Coordinator) BiometricKindLabel(ctx context.Context) string {
	label, err := c.provider.KindLabel(ctx)
	if err != nil || label == "" {
		return domain.KindUnspecified.Label()
	}
	return label
}

func (c *Coordinator) State() domain.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Coordinator) Binding(ctx context.Context) domain.Binding {
	b, err := c.bindings.Load(ctx)
	if err != nil {
		logger.Error("Failed to load biometric binding", "error", err)
		return domain.Binding{Kind: domain.KindUnspecified}
	}
	return b
}

// challenge runs one live prompt and normalizes its result. The caller
// must hold the in-flight gate.
func (c *Coordinator) challenge(ctx context.Context, operation, reason string) (domain.Status, string) {
	started := time.Now()
	res, err := c.provider.Challenge(ctx, domain.ChallengeTitle, reason)
	c.metrics.observeChallenge(operation, started)
	if err != nil {
		logger.Error("Biometric challenge could not start", "operation", operation, "error", err)
		return domain.StatusError, fmt.Sprintf("Failed to start biometric: %v", err)
	}
	return c.provider.Platform().Normalize(res)
}

func (c *Coordinator) availableState(ctx context.Context) domain.State {
	if c.IsEnabled(ctx) {
		return domain.StateAvailableEnabled
	}
	return domain.StateAvailableDisabled
}

func (c *Coordinator) setState(s domain.State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Coordinator) acquire() bool {
	return c.inFlight.CompareAndSwap(false, true)
}

func (c *Coordinator) release() {
	c.inFlight.Store(false)
}

func withDefault(reason, fallback string) string {
	if r := strings.TrimSpace(reason); r != "" {
		return r
	}
	return fallback
}
