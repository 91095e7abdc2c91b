package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
)

// BindingStore maps the biometric binding onto fixed keys of a
// CredentialStore. The enabled flag is written last and removed first so
// that an interrupted write never reports a binding that is not complete.
type BindingStore struct {
	store CredentialStore
}

func NewBindingStore(store CredentialStore) *BindingStore {
	return &BindingStore{store: store}
}

func (b *BindingStore) IsEnabled(ctx context.Context) (bool, error) {
	v, ok, err := b.store.Get(ctx, domain.KeyEnabled)
	if err != nil {
		return false, err
	}
	return ok && v == domain.EnabledFlagValue, nil
}

func (b *BindingStore) Load(ctx context.Context) (domain.Binding, error) {
	enabled, err := b.IsEnabled(ctx)
	if err != nil {
		return domain.Binding{}, err
	}
	binding := domain.Binding{Kind: domain.KindUnspecified}
	if !enabled {
		return binding, nil
	}
	binding.Enabled = true

	if binding.EnabledAt, err = b.readTime(ctx, domain.KeyEnrolledAt); err != nil {
		return domain.Binding{}, err
	}
	if binding.LastAuthAt, err = b.readTime(ctx, domain.KeyLastAuthAt); err != nil {
		return domain.Binding{}, err
	}

	kind, _, err := b.store.Get(ctx, domain.KeyKind)
	if err != nil {
		return domain.Binding{}, err
	}
	binding.Kind = domain.ParseKind(kind)

	if binding.UserID, binding.Email, err = b.Credentials(ctx); err != nil {
		return domain.Binding{}, err
	}
	return binding, nil
}

// Enable writes a fresh binding. An identity left behind while the flag
// was off is stale and is cleared before the flag goes on.
func (b *BindingStore) Enable(ctx context.Context, at time.Time, kind domain.Kind) error {
	enabled, err := b.IsEnabled(ctx)
	if err != nil {
		return fmt.Errorf("read enabled flag: %w", err)
	}
	if !enabled {
		for _, key := range []string{domain.KeyUserID, domain.KeyUserEmail} {
			if err := b.store.Remove(ctx, key); err != nil {
				return fmt.Errorf("clear stale %s: %w", key, err)
			}
		}
	}

	if err := b.store.Set(ctx, domain.KeyEnrolledAt, formatTime(at)); err != nil {
		return fmt.Errorf("write enrollment time: %w", err)
	}
	if err := b.store.Set(ctx, domain.KeyKind, string(kind)); err != nil {
		_ = b.store.Remove(ctx, domain.KeyEnrolledAt)
		return fmt.Errorf("write biometric kind: %w", err)
	}
	if err := b.store.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue); err != nil {
		_ = b.store.Remove(ctx, domain.KeyEnrolledAt)
		_ = b.store.Remove(ctx, domain.KeyKind)
		return fmt.Errorf("write enabled flag: %w", err)
	}
	return nil
}

// Disable removes every binding key. All removals are attempted; the
// returned error joins whatever failed.
func (b *BindingStore) Disable(ctx context.Context) error {
	var errs []error
	for _, key := range []string{
		domain.KeyEnabled,
		domain.KeyEnrolledAt,
		domain.KeyLastAuthAt,
		domain.KeyKind,
		domain.KeyUserID,
		domain.KeyUserEmail,
	} {
		if err := b.store.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (b *BindingStore) TouchLastAuth(ctx context.Context, at time.Time) error {
	return b.store.Set(ctx, domain.KeyLastAuthAt, formatTime(at))
}

func (b *BindingStore) SaveCredentials(ctx context.Context, userID, email string) error {
	if err := b.store.Set(ctx, domain.KeyUserID, userID); err != nil {
		return fmt.Errorf("write user id: %w", err)
	}
	if err := b.store.Set(ctx, domain.KeyUserEmail, email); err != nil {
		return fmt.Errorf("write user email: %w", err)
	}
	return nil
}

// Credentials reads the stored identity as-is; a missing key reads as "".
func (b *BindingStore) Credentials(ctx context.Context) (string, string, error) {
	userID, _, err := b.store.Get(ctx, domain.KeyUserID)
	if err != nil {
		return "", "", err
	}
	email, _, err := b.store.Get(ctx, domain.KeyUserEmail)
	if err != nil {
		return "", "", err
	}
	return userID, email, nil
}

func (b *BindingStore) readTime(ctx context.Context, key string) (*time.Time, error) {
	v, ok, err := b.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil, nil
	}
	return &t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
