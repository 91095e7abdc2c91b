package test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/repository"
	"github.com/Suraj999-github/MauiBankApp/pkg/crypto"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSealKey = "0123456789abcdef0123456789abcdef"

func newRedisStore(t *testing.T) (*miniredis.Miniredis, *repository.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, repository.NewRedisStore(client, "")
}

func newSealer(t *testing.T, key string) *crypto.Sealer {
	t.Helper()
	s, err := crypto.NewSealer(key)
	require.NoError(t, err)
	return s
}

func TestCredentialStore_Contract(t *testing.T) {
	backends := map[string]func(t *testing.T) repository.CredentialStore{
		"memory": func(*testing.T) repository.CredentialStore {
			return repository.NewMemoryStore()
		},
		"file": func(t *testing.T) repository.CredentialStore {
			s, err := repository.NewFileStore(filepath.Join(t.TempDir(), "secure", "store.json"))
			require.NoError(t, err)
			return s
		},
		"redis": func(t *testing.T) repository.CredentialStore {
			_, s := newRedisStore(t)
			return s
		},
		"encrypted": func(t *testing.T) repository.CredentialStore {
			return repository.NewEncryptedStore(repository.NewMemoryStore(), newSealer(t, testSealKey))
		},
		"cached": func(*testing.T) repository.CredentialStore {
			return repository.NewCachedStore(repository.NewMemoryStore(), 8, time.Minute)
		},
	}

	for name, build := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := build(t)

			_, ok, err := store.Get(ctx, domain.KeyUserID)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, domain.KeyUserID, "1"))
			v, ok, err := store.Get(ctx, domain.KeyUserID)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "1", v)

			require.NoError(t, store.Set(ctx, domain.KeyUserID, "2"))
			v, _, _ = store.Get(ctx, domain.KeyUserID)
			assert.Equal(t, "2", v)

			require.NoError(t, store.Set(ctx, domain.KeyUserEmail, ""))
			v, ok, err = store.Get(ctx, domain.KeyUserEmail)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, v)

			require.NoError(t, store.Remove(ctx, domain.KeyUserID))
			_, ok, err = store.Get(ctx, domain.KeyUserID)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Remove(ctx, "never_written"))
		})
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := repository.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue))
	require.NoError(t, first.Set(ctx, domain.KeyUserEmail, "suraj.goud@eg.com"))
	require.NoError(t, first.Remove(ctx, domain.KeyEnabled))

	second, err := repository.NewFileStore(path)
	require.NoError(t, err)

	_, ok, _ := second.Get(ctx, domain.KeyEnabled)
	assert.False(t, ok)
	v, ok, _ := second.Get(ctx, domain.KeyUserEmail)
	assert.True(t, ok)
	assert.Equal(t, "suraj.goud@eg.com", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := repository.NewFileStore(path)
	assert.ErrorContains(t, err, "decode store")
}

func TestRedisStore_Prefix(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedisStore(t)

	require.NoError(t, store.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue))

	v, err := mr.Get("mauibank:secure:" + domain.KeyEnabled)
	require.NoError(t, err)
	assert.Equal(t, domain.EnabledFlagValue, v)
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedisStore(t)
	mr.Close()

	_, _, err := store.Get(ctx, domain.KeyEnabled)
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue))
}

func TestEncryptedStore_SealsAtRest(t *testing.T) {
	ctx := context.Background()
	backing := repository.NewMemoryStore()
	store := repository.NewEncryptedStore(backing, newSealer(t, testSealKey))

	require.NoError(t, store.Set(ctx, domain.KeyUserEmail, "suraj.goud@eg.com"))

	raw, ok, err := backing.Get(ctx, domain.KeyUserEmail)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, strings.Contains(raw, "suraj"))

	t.Run("wrong key", func(t *testing.T) {
		other := repository.NewEncryptedStore(backing, newSealer(t, strings.Repeat("z", 32)))
		_, ok, err := other.Get(ctx, domain.KeyUserEmail)
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("value moved to another key", func(t *testing.T) {
		require.NoError(t, backing.Set(ctx, domain.KeyUserID, raw))
		_, _, err := store.Get(ctx, domain.KeyUserID)
		assert.Error(t, err)
	})
}

func TestCachedStore_ReadThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backing := NewMockCredentialStore(ctrl)
	store := repository.NewCachedStore(backing, 8, time.Minute)

	backing.EXPECT().Get(gomock.Any(), domain.KeyUserID).Return("1", true, nil).Times(1)
	backing.EXPECT().Get(gomock.Any(), domain.KeyUserEmail).Return("", false, nil).Times(1)

	for range 3 {
		v, ok, err := store.Get(ctx, domain.KeyUserID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", v)

		_, ok, err = store.Get(ctx, domain.KeyUserEmail)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestCachedStore_FailedWriteIsNotCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backing := NewMockCredentialStore(ctrl)
	store := repository.NewCachedStore(backing, 8, time.Minute)

	backing.EXPECT().Set(gomock.Any(), domain.KeyEnabled, domain.EnabledFlagValue).Return(errors.New("disk full"))
	backing.EXPECT().Get(gomock.Any(), domain.KeyEnabled).Return("", false, nil)

	assert.Error(t, store.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue))

	_, ok, err := store.Get(ctx, domain.KeyEnabled)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachedStore_RemoveCachesAbsence(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backing := NewMockCredentialStore(ctrl)
	store := repository.NewCachedStore(backing, 8, time.Minute)

	backing.EXPECT().Set(gomock.Any(), domain.KeyEnabled, domain.EnabledFlagValue).Return(nil)
	backing.EXPECT().Remove(gomock.Any(), domain.KeyEnabled).Return(nil)

	require.NoError(t, store.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue))
	require.NoError(t, store.Remove(ctx, domain.KeyEnabled))

	_, ok, err := store.Get(ctx, domain.KeyEnabled)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachedStore_WriteDuringReadThroughWins(t *testing.T) {
	tests := []struct {
		name      string
		backing   cacheEntryResult
		write     func(ctx context.Context, store *repository.CachedStore) error
		expect    func(backing *MockCredentialStore)
		wantValue string
		wantOK    bool
	}{
		{
			name:    "set lands while absence is being read",
			backing: cacheEntryResult{value: "", ok: false},
			write: func(ctx context.Context, store *repository.CachedStore) error {
				return store.Set(ctx, domain.KeyEnabled, domain.EnabledFlagValue)
			},
			expect: func(backing *MockCredentialStore) {
				backing.EXPECT().Set(gomock.Any(), domain.KeyEnabled, domain.EnabledFlagValue).Return(nil)
			},
			wantValue: domain.EnabledFlagValue,
			wantOK:    true,
		},
		{
			name:    "remove lands while the flag is being read",
			backing: cacheEntryResult{value: domain.EnabledFlagValue, ok: true},
			write: func(ctx context.Context, store *repository.CachedStore) error {
				return store.Remove(ctx, domain.KeyEnabled)
			},
			expect: func(backing *MockCredentialStore) {
				backing.EXPECT().Remove(gomock.Any(), domain.KeyEnabled).Return(nil)
			},
			wantValue: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			backing := NewMockCredentialStore(ctrl)
			store := repository.NewCachedStore(backing, 8, time.Minute)

			entered := make(chan struct{})
			release := make(chan struct{})
			backing.EXPECT().
				Get(gomock.Any(), domain.KeyEnabled).
				DoAndReturn(func(context.Context, string) (string, bool, error) {
					close(entered)
					<-release
					return tt.backing.value, tt.backing.ok, nil
				}).
				Times(1)
			tt.expect(backing)

			done := make(chan struct{})
			go func() {
				defer close(done)
				_, _, _ = store.Get(ctx, domain.KeyEnabled)
			}()

			<-entered
			require.NoError(t, tt.write(ctx, store))
			close(release)
			<-done

			v, ok, err := store.Get(ctx, domain.KeyEnabled)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

type cacheEntryResult struct {
	value string
	ok    bool
}

func TestBindingStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("identity without flag is stale", func(t *testing.T) {
		store := repository.NewMemoryStore()
		bindings := repository.NewBindingStore(store)
		require.NoError(t, bindings.SaveCredentials(ctx, "1", "suraj.goud@eg.com"))

		b, err := bindings.Load(ctx)
		require.NoError(t, err)
		assert.False(t, b.Enabled)
		assert.Empty(t, b.UserID)
		assert.False(t, b.HasCredentials())

		userID, email, err := bindings.Credentials(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1", userID)
		assert.Equal(t, "suraj.goud@eg.com", email)
	})

	t.Run("unparsable time reads as absent", func(t *testing.T) {
		store := repository.NewMemoryStore()
		bindings := repository.NewBindingStore(store)
		require.NoError(t, bindings.Enable(ctx, fixedNow, domain.KindFace))
		require.NoError(t, store.Set(ctx, domain.KeyLastAuthAt, "yesterday"))

		b, err := bindings.Load(ctx)
		require.NoError(t, err)
		assert.True(t, b.Enabled)
		assert.Equal(t, domain.KindFace, b.Kind)
		require.NotNil(t, b.EnabledAt)
		assert.True(t, fixedNow.Equal(*b.EnabledAt))
		assert.Nil(t, b.LastAuthAt)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockCredentialStore(ctrl)
		store.EXPECT().Get(gomock.Any(), domain.KeyEnabled).Return("", false, errors.New("keychain locked"))

		_, err := repository.NewBindingStore(store).Load(ctx)
		assert.Error(t, err)
	})
}

func TestBindingStore_DisableAttemptsEveryKey(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := NewMockCredentialStore(ctrl)

	store.EXPECT().Remove(gomock.Any(), domain.KeyEnabled).Return(nil)
	store.EXPECT().Remove(gomock.Any(), domain.KeyEnrolledAt).Return(errors.New("io error"))
	store.EXPECT().Remove(gomock.Any(), domain.KeyLastAuthAt).Return(nil)
	store.EXPECT().Remove(gomock.Any(), domain.KeyKind).Return(nil)
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserID).Return(errors.New("io error"))
	store.EXPECT().Remove(gomock.Any(), domain.KeyUserEmail).Return(nil)

	err := repository.NewBindingStore(store).Disable(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.KeyEnrolledAt)
	assert.Contains(t, err.Error(), domain.KeyUserID)
}
