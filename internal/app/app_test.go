package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/logging"
	"github.com/i474232898/weather-lookup/internal/store"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg, err := config.Load(config.NewViper())
	require.NoError(t, err)
	cfg.PreferenceDSN = ":memory:"
	return cfg
}

func TestBuild_MemoryCacheWithSweeper(t *testing.T) {
	cfg := testConfig(t)

	c, err := Build(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &store.MemoryCache{}, c.Cache)
	assert.NotNil(t, c.Sweeper)
	assert.NotNil(t, c.Forecasts)
	assert.NotNil(t, c.Cities)
	assert.NotNil(t, c.Preferences)
}

func TestBuild_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.CacheBackend = config.CacheRedis
	cfg.RedisAddr = mr.Addr()

	c, err := Build(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &store.RedisCache{}, c.Cache)
	assert.Nil(t, c.Sweeper)
}

func TestBuild_RedisUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.CacheBackend = config.CacheRedis
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := Build(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}

func TestBuild_ForecastEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lisbon", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"city":{"name":"Lisbon"},"list":[{"dt_txt":"2025-08-23 12:00:00","main":{"temp":27}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.OpenWeatherAPIKey = "k"
	cfg.OpenWeatherURL = srv.URL

	c, err := Build(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer c.Close()

	snap, err := c.Forecasts.GetWeatherForecast(context.Background(), " Lisbon ")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", snap.City)

	_, found, err := c.Cache.Get(context.Background(), "weather:lisbon")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestBuild_BBCSearchProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.CitySearchProvider = config.SearchBBC

	c, err := Build(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer c.Close()

	// No API key configured: the provider fails and the gazetteer answers.
	results, err := c.Cities.Search(context.Background(), "sydney")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Sydney", results[0].Name)
}
