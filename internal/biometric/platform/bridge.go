package platform

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"

	"github.com/google/uuid"
)

var (
	ErrPromptOpen    = errors.New("a biometric prompt is already open")
	ErrNoPrompt      = errors.New("no biometric prompt is open")
	ErrPromptUnknown = errors.New("prompt id does not match the open prompt")
)

// Prompt is a native prompt waiting for the device to answer.
type Prompt struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Reason   string    `json:"reason"`
	OpenedAt time.Time `json:"openedAt"`
}

// DeviceBridge stands in for the native prompt of a real handset. A
// CallbackProvider built from it opens prompts that an external driver
// (the device simulator) answers with raw platform results.
type DeviceBridge struct {
	mu        sync.Mutex
	platform  Platform
	available bool
	kind      domain.Kind
	pending   *Prompt
	done      func(Result)
}

func NewDeviceBridge(p Platform, kind domain.Kind, available bool) *DeviceBridge {
	return &DeviceBridge{
		platform:  p,
		available: available,
		kind:      kind,
	}
}

// Provider wires the bridge into a CallbackProvider for its platform.
func (b *DeviceBridge) Provider() (*CallbackProvider, error) {
	return NewCallbackProvider(CallbackConfig{
		Platform:  b.platform,
		Available: b.checkAvailability,
		Start:     b.start,
		Dismiss:   b.dismiss,
		Kind:      b.kind,
	})
}

func (b *DeviceBridge) SetAvailable(available bool) {
	b.mu.Lock()
	b.available = available
	b.mu.Unlock()
}

// Pending returns the open prompt, if any.
func (b *DeviceBridge) Pending() (Prompt, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return Prompt{}, false
	}
	return *b.pending, true
}

// Answer completes the open prompt with a raw platform result.
func (b *DeviceBridge) Answer(id uuid.UUID, r Result) error {
	b.mu.Lock()
	if b.pending == nil {
		b.mu.Unlock()
		return ErrNoPrompt
	}
	if b.pending.ID != id {
		b.mu.Unlock()
		return ErrPromptUnknown
	}
	done := b.done
	b.pending, b.done = nil, nil
	b.mu.Unlock()

	done(r)
	return nil
}

func (b *DeviceBridge) checkAvailability(_ context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.available, nil
}

func (b *DeviceBridge) start(title, reason string, done func(Result)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending != nil {
		return ErrPromptOpen
	}
	b.pending = &Prompt{
		ID:       uuid.New(),
		Title:    title,
		Reason:   reason,
		OpenedAt: time.Now().UTC(),
	}
	b.done = done
	return nil
}

func (b *DeviceBridge) dismiss() {
	b.mu.Lock()
	b.pending, b.done = nil, nil
	b.mu.Unlock()
}
