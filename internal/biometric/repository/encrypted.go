package repository

import (
	"context"
	"fmt"

	"github.com/Suraj999-github/MauiBankApp/pkg/crypto"
)

// EncryptedStore seals values before handing them to the wrapped store.
// Keys stay in the clear so Remove works without a lookup.
type EncryptedStore struct {
	next   CredentialStore
	sealer *crypto.Sealer
}

func NewEncryptedStore(next CredentialStore, sealer *crypto.Sealer) *EncryptedStore {
	return &EncryptedStore{
		next:   next,
		sealer: sealer,
	}
}

func (e *EncryptedStore) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, ok, err := e.next.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	v, err := e.sealer.Open(sealed, key)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", key, err)
	}
	return v, true, nil
}

func (e *EncryptedStore) Set(ctx context.Context, key, value string) error {
	sealed, err := e.sealer.Seal(value, key)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return e.next.Set(ctx, key, sealed)
}

func (e *EncryptedStore) Remove(ctx context.Context, key string) error {
	return e.next.Remove(ctx, key)
}
