// Package app assembles the service's components from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/scheduler"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

// Components is everything the entrypoints need.
type Components struct {
	Cache       weather.CacheStore
	Forecasts   *weather.ForecastService
	Cities      *weather.CitySearchService
	Preferences *store.SQLPreferenceStore
	Sweeper     *scheduler.Scheduler // nil unless the cache is in-process

	closers []func() error
}

// Close releases the cache and database connections.
func (c *Components) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	return errors.Join(errs...)
}

// Build wires cache, providers, preference store and services according to cfg.
func Build(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Components, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Components{}

	cache, sweeper, err := buildCache(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Cache = cache
	c.Sweeper = sweeper
	if closer, ok := cache.(interface{ Close() error }); ok {
		c.closers = append(c.closers, closer.Close)
	}

	prefs, err := store.OpenPreferenceStore(ctx, store.Backend(cfg.PreferenceBackend), cfg.PreferenceDSN)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Preferences = prefs
	c.closers = append(c.closers, prefs.Close)

	client := &http.Client{Timeout: cfg.HTTPTimeout}

	forecastProvider := providers.NewOpenWeatherProvider(client, cfg.OpenWeatherAPIKey,
		providers.WithBaseURL(cfg.OpenWeatherURL))
	searchProvider, err := buildSearchProvider(cfg, client)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	gazetteer, err := weather.DefaultGazetteer()
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Forecasts = weather.NewForecastService(forecastProvider, cache, prefs, weather.ForecastOptions{
		TTL:              cfg.WeatherCacheTTL,
		BatchConcurrency: cfg.BatchConcurrency,
	}, logger)
	c.Cities = weather.NewCitySearchService(searchProvider, cache, gazetteer, cfg.CitySearchCacheTTL, logger)

	logger.Info("components ready",
		"cache", cfg.CacheBackend,
		"city_search", searchProvider.Name(),
		"preferences", cfg.PreferenceBackend,
	)
	return c, nil
}

func buildCache(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (weather.CacheStore, *scheduler.Scheduler, error) {
	switch cfg.CacheBackend {
	case config.CacheRedis:
		rc, err := store.NewRedisCache(ctx, store.RedisConfig{
			Addr:           cfg.RedisAddr,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			CommandTimeout: cfg.CacheCommandTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return rc, nil, nil
	case config.CacheMemory, "":
		mc := store.NewMemoryCache()
		return mc, scheduler.New(mc, cfg.CacheSweepInterval, logger), nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache backend %q", cfg.CacheBackend)
	}
}

func buildSearchProvider(cfg *config.AppConfig, client *http.Client) (weather.CitySearchProvider, error) {
	switch cfg.CitySearchProvider {
	case config.SearchGeoapify, "":
		return providers.NewGeoapifyProvider(client, cfg.GeoapifyAPIKey, providers.WithBaseURL(cfg.GeoapifyURL)), nil
	case config.SearchBBC:
		return providers.NewBBCProvider(client, cfg.BBCAPIKey, providers.WithBaseURL(cfg.BBCURL)), nil
	default:
		return nil, fmt.Errorf("unsupported city search provider %q", cfg.CitySearchProvider)
	}
}
