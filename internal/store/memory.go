package store

import (
	"context"
	"sync"
	"time"
)

// cacheEntry is one stored value. A zero expireAt never expires.
type cacheEntry struct {
	value    string
	expireAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && !now.Before(e.expireAt)
}

// MemoryCache is a concurrency-safe in-process weather.CacheStore.
// Expired entries are hidden on read and removed by Sweep.
type MemoryCache struct {
	mu sync.RWMutex

	// key: cache key, value: entry
	data map[string]cacheEntry

	now func() time.Time
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]cacheEntry),
		now:  time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	now := c.now()

	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if e.expired(now) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have replaced the entry.
		if cur, ok := c.data[key]; ok && cur.expired(now) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return "", false, nil
	}
	return e.value, true, nil
}

// Set stores value, replacing any previous entry. ttl <= 0 never expires.
func (c *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	now := c.now()
	e := cacheEntry{value: value}
	if ttl > 0 {
		e.expireAt = now.Add(ttl)
	}

	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

// Sweep removes every expired entry and returns how many were removed.
func (c *MemoryCache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
