package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	_, found, err := c.Get(ctx, "city-search:lon")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "city-search:lon", `[{"name":"London"}]`, 12*time.Hour))
	v, found, err := c.Get(ctx, "city-search:lon")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"name":"London"}]`, v)
	assert.Equal(t, 12*time.Hour, mr.TTL("city-search:lon"))

	require.NoError(t, c.Delete(ctx, "city-search:lon"))
	assert.False(t, mr.Exists("city-search:lon"))
}

func TestRedisCache_EntryExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "weather:oslo", "x", time.Second))
	mr.FastForward(time.Second)

	_, found, err := c.Get(ctx, "weather:oslo")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_UnavailableServerReturnsErrors(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	c := NewRedisCacheFromClient(client, 100*time.Millisecond)
	t.Cleanup(func() { _ = c.Close() })

	mr.Close()

	_, found, err := c.Get(ctx, "weather:rome")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, c.Set(ctx, "weather:rome", "x", time.Minute))
}

func TestNewRedisCache_FailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr, CommandTimeout: 100 * time.Millisecond})
	assert.Error(t, err)
}
