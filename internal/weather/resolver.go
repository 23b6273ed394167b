package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// FetchFunc loads the value for a normalized key from its source of truth.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// Resolver implements cache-aside lookups for one key namespace: serve from
// the cache when possible, otherwise fetch and populate.
//
// The cache is treated as optional. Read failures count as misses and write
// failures are logged and dropped, so a broken cache never fails a resolve.
// Concurrent misses for the same key may each call fetch; the last write wins.
type Resolver[T any] struct {
	cache     CacheStore
	prefix    string
	normalize func(string) string
	logger    *slog.Logger
}

// NewResolver creates a Resolver. cache may be nil, in which case every
// resolve is a miss.
func NewResolver[T any](cache CacheStore, prefix string, normalize func(string) string, logger *slog.Logger) *Resolver[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver[T]{
		cache:     cache,
		prefix:    prefix,
		normalize: normalize,
		logger:    logger,
	}
}

// Normalize applies the resolver's normalization and validates the result.
func (r *Resolver[T]) Normalize(rawKey string) (string, error) {
	key := r.normalize(rawKey)
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// Resolve returns the cached value for rawKey, or calls fetch with the
// normalized key and caches its result for ttl. Errors from fetch are
// returned unchanged.
func (r *Resolver[T]) Resolve(ctx context.Context, rawKey string, ttl time.Duration, fetch FetchFunc[T]) (T, error) {
	var zero T

	key, err := r.Normalize(rawKey)
	if err != nil {
		return zero, err
	}
	cacheKey := CacheKey(r.prefix, key)

	if v, ok := r.lookup(ctx, cacheKey); ok {
		r.logger.Debug("cache hit", "key", cacheKey)
		return v, nil
	}
	r.logger.Debug("cache miss", "key", cacheKey)

	v, err := fetch(ctx, key)
	if err != nil {
		return zero, err
	}

	r.store(ctx, cacheKey, v, ttl)
	return v, nil
}

// Invalidate deletes the cached value for rawKey.
func (r *Resolver[T]) Invalidate(ctx context.Context, rawKey string) error {
	key, err := r.Normalize(rawKey)
	if err != nil {
		return err
	}
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, CacheKey(r.prefix, key))
}

func (r *Resolver[T]) lookup(ctx context.Context, cacheKey string) (T, bool) {
	var v T
	if r.cache == nil {
		return v, false
	}

	raw, found, err := r.cache.Get(ctx, cacheKey)
	if err != nil {
		r.logger.Warn("cache read failed; treating as miss", "key", cacheKey, "error", err)
		return v, false
	}
	if !found {
		return v, false
	}

	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		r.logger.Warn("cached value is not decodable; treating as miss", "key", cacheKey, "error", err)
		var zero T
		return zero, false
	}
	return v, true
}

func (r *Resolver[T]) store(ctx context.Context, cacheKey string, v T, ttl time.Duration) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Warn("cache encode failed; value not cached", "key", cacheKey, "error", err)
		return
	}
	if err := r.cache.Set(ctx, cacheKey, string(data), ttl); err != nil {
		r.logger.Warn("cache write failed; value not cached", "key", cacheKey, "error", err)
	}
}
