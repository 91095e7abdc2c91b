package platform

import (
	"context"
	"fmt"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

// StartFunc launches a native prompt and reports its completion through
// done. It must return without waiting for the user.
type StartFunc func(title, reason string, done func(Result)) error

type CallbackConfig struct {
	Platform  Platform
	Available func(ctx context.Context) (bool, error)
	Start     StartFunc

	// Dismiss, when set, closes the native prompt after the caller gave up.
	Dismiss func()

	Kind      domain.Kind
	KindLabel string
}

// CallbackProvider adapts a callback-style native biometric API to Provider.
type CallbackProvider struct {
	cfg CallbackConfig
}

func NewCallbackProvider(cfg CallbackConfig) (*CallbackProvider, error) {
	if cfg.Start == nil {
		return nil, fmt.Errorf("callback provider: start function is required")
	}
	if cfg.Available == nil {
		return nil, fmt.Errorf("callback provider: availability function is required")
	}
	if cfg.Kind == "" {
		cfg.Kind = domain.KindUnspecified
	}
	return &CallbackProvider{cfg: cfg}, nil
}

func (c *CallbackProvider) Platform() Platform {
	return c.cfg.Platform
}

func (c *CallbackProvider) CheckAvailability(ctx context.Context) (bool, error) {
	return c.cfg.Available(ctx)
}

func (c *CallbackProvider) Challenge(ctx context.Context, title, reason string) (res Result, err error) {
	p := NewPromise()

	defer func() {
		if rec := recover(); rec != nil {
			res = Result{}
			err = fmt.Errorf("start biometric prompt: %v", rec)
		}
	}()

	if err := c.cfg.Start(title, reason, func(r Result) { p.Resolve(r) }); err != nil {
		return Result{}, fmt.Errorf("start biometric prompt: %w", err)
	}

	res = p.Await(ctx)
	if (res.Canceled || res.TimedOut) && ctx.Err() != nil && c.cfg.Dismiss != nil {
		c.cfg.Dismiss()
	}
	return res, nil
}

func (c *CallbackProvider) Kind(_ context.Context) (domain.Kind, error) {
	return c.cfg.Kind, nil
}

func (c *CallbackProvider) KindLabel(_ context.Context) (string, error) {
	if c.cfg.KindLabel != "" {
		return c.cfg.KindLabel, nil
	}
	return c.cfg.Kind.Label(), nil
}
