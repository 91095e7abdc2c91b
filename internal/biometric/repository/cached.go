package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bluele/gcache"
)

// CachedStore fronts a slower store (file, redis) with an LRU cache.
// Writes go to the backing store first and only then update the cache, so
// a failed write never leaves a value visible that was not persisted.
// Every write bumps a per-key generation; a read-through only fills the
// cache when no write to that key completed while it was reading.
type CachedStore struct {
	next  CredentialStore
	cache gcache.Cache

	mu  sync.Mutex
	gen map[string]uint64
}

type cacheEntry struct {
	value string
	ok    bool
}

func NewCachedStore(next CredentialStore, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = 64
	}
	b := gcache.New(size).LRU()
	if ttl > 0 {
		b = b.Expiration(ttl)
	}
	return &CachedStore{
		next:  next,
		cache: b.Build(),
		gen:   map[string]uint64{},
	}
}

func (c *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if cached, err := c.cache.Get(key); err == nil {
		e := cached.(cacheEntry)
		return e.value, e.ok, nil
	}

	c.mu.Lock()
	seen := c.gen[key]
	c.mu.Unlock()

	v, ok, err := c.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}

	c.mu.Lock()
	if c.gen[key] == seen {
		_ = c.cache.Set(key, cacheEntry{value: v, ok: ok})
	}
	c.mu.Unlock()
	return v, ok, nil
}

func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	err := c.next.Set(ctx, key, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[key]++
	if err != nil {
		c.cache.Remove(key)
		return err
	}
	_ = c.cache.Set(key, cacheEntry{value: value, ok: true})
	return nil
}

func (c *CachedStore) Remove(ctx context.Context, key string) error {
	c.invalidate(key)
	err := c.next.Remove(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[key]++
	if err != nil {
		c.cache.Remove(key)
		return err
	}
	_ = c.cache.Set(key, cacheEntry{})
	return nil
}

func (c *CachedStore) invalidate(key string) {
	c.mu.Lock()
	c.gen[key]++
	c.cache.Remove(key)
	c.mu.Unlock()
}
