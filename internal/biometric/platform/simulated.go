package platform

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

// FaultInjector may replace the outcome of a simulated challenge. Returning
// nil keeps the scripted result.
type FaultInjector func() *Result

type SimulatedOption func(*SimulatedProvider)

func WithAvailability(available bool) SimulatedOption {
	return func(s *SimulatedProvider) { s.available = available }
}

func WithAvailabilityError(err error) SimulatedOption {
	return func(s *SimulatedProvider) { s.availErr = err }
}

func WithKind(kind domain.Kind) SimulatedOption {
	return func(s *SimulatedProvider) { s.kind = kind }
}

func WithChallengeDelay(d time.Duration) SimulatedOption {
	return func(s *SimulatedProvider) { s.delay = d }
}

// WithScript queues results returned by successive challenges. Once the
// queue is drained every challenge succeeds.
func WithScript(results ...Result) SimulatedOption {
	return func(s *SimulatedProvider) { s.script = append(s.script, results...) }
}

func WithFaultInjector(f FaultInjector) SimulatedOption {
	return func(s *SimulatedProvider) { s.inject = f }
}

// RateFaultInjector fails roughly rate of all challenges with a mismatch.
// Only meant for exercising failure paths in demos and tests.
func RateFaultInjector(rate float64, seed int64) FaultInjector {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))
	return func() *Result {
		mu.Lock()
		roll := rng.Float64()
		mu.Unlock()
		if roll < rate {
			return &Result{Message: domain.MsgFailed}
		}
		return nil
	}
}

// SimulatedProvider is a deterministic stand-in for device hardware.
type SimulatedProvider struct {
	mu        sync.Mutex
	available bool
	availErr  error
	kind      domain.Kind
	delay     time.Duration
	script    []Result
	inject    FaultInjector

	checks     atomic.Int64
	challenges atomic.Int64
}

func NewSimulatedProvider(opts ...SimulatedOption) *SimulatedProvider {
	s := &SimulatedProvider{
		available: true,
		kind:      domain.KindFingerprint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SimulatedProvider) Platform() Platform {
	return PlatformSimulated
}

func (s *SimulatedProvider) CheckAvailability(_ context.Context) (bool, error) {
	s.checks.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.availErr != nil {
		return false, s.availErr
	}
	return s.available, nil
}

func (s *SimulatedProvider) Challenge(ctx context.Context, _, _ string) (Result, error) {
	s.challenges.Add(1)

	s.mu.Lock()
	available := s.available
	var next Result
	scripted := false
	if len(s.script) > 0 {
		next, s.script = s.script[0], s.script[1:]
		scripted = true
	}
	inject := s.inject
	delay := s.delay
	s.mu.Unlock()

	switch {
	case !available:
		next = Failure(AndroidErrorHwNotPresent, domain.MsgNotAvailable)
	case !scripted:
		next = Result{Success: true, Message: domain.MsgAuthenticationSuccessful}
	}
	if inject != nil && available {
		if r := inject(); r != nil {
			next = *r
		}
	}

	p := NewPromise()
	if delay <= 0 {
		p.Resolve(next)
	} else {
		t := time.AfterFunc(delay, func() { p.Resolve(next) })
		defer t.Stop()
	}
	return p.Await(ctx), nil
}

func (s *SimulatedProvider) Kind(_ context.Context) (domain.Kind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, nil
}

func (s *SimulatedProvider) KindLabel(ctx context.Context) (string, error) {
	k, err := s.Kind(ctx)
	if err != nil {
		return "", err
	}
	return k.Label(), nil
}

func (s *SimulatedProvider) SetAvailable(available bool) {
	s.mu.Lock()
	s.available = available
	s.mu.Unlock()
}

func (s *SimulatedProvider) Enqueue(results ...Result) {
	s.mu.Lock()
	s.script = append(s.script, results...)
	s.mu.Unlock()
}

func (s *SimulatedProvider) Challenges() int {
	return int(s.challenges.Load())
}

func (s *SimulatedProvider) AvailabilityChecks() int {
	return int(s.checks.Load())
}
