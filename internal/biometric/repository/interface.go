package repository

import (
	"context"
)

// CredentialStore is the device's secure key-value storage. Get reports
// ok=false for a missing key; err is reserved for the store itself failing.
//
//go:generate mockgen -destination=../test/mock_credential_store.go -package=test github.com/Suraj999-github/MauiBankApp/internal/biometric/repository CredentialStore
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
