// Package cache provides a small generic in-memory cache with per-entry TTL.
package cache

import (
	"sync"
	"time"

	"github.com/tripnest/storefront/internal/infrastructure/timeutil"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache stores values by key until their TTL elapses.
// Values are passed through the clone function on the way in and out, so callers
// never share backing arrays with the cache. It is safe for concurrent use.
//
// Expired entries are evicted when read, and Set sweeps the whole map at most
// once per TTL, so keys that are never read again do not accumulate.
type Cache[T any] struct {
	mu        sync.RWMutex
	entries   map[string]entry[T]
	clone     func(T) T
	clock     timeutil.Clock
	nextSweep time.Time
}

// New creates an empty cache. clone may be nil for value types.
func New[T any](clone func(T) T) *Cache[T] {
	return NewWithClock(clone, timeutil.NewRealClock())
}

// NewWithClock creates an empty cache that reads time from clock.
func NewWithClock[T any](clone func(T) T, clock timeutil.Clock) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		clock:   clock,
	}
}

// Get returns the value for key if present and not expired.
// Expired entries are evicted on read.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	if c.clock.Now().After(e.expiry) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it
		if cur, still := c.entries[key]; still && !c.clock.Now().Before(cur.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		var zero T
		return zero, false
	}
	return c.cloneValue(e.value), true
}

// Set stores value under key for ttl. A non-positive ttl is a no-op.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	value = c.cloneValue(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if !now.Before(c.nextSweep) {
		c.prune(now)
		c.nextSweep = now.Add(ttl)
	}
	c.entries[key] = entry[T]{value: value, expiry: now.Add(ttl)}
}

// Delete removes key from the cache.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// prune evicts every entry expired at now. The caller holds the write lock.
func (c *Cache[T]) prune(now time.Time) {
	for key, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
