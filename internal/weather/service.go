package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultWeatherTTL    = 600 * time.Second
	DefaultCitySearchTTL = 12 * time.Hour
)

// ForecastService serves city forecasts through the weather:<city> cache.
type ForecastService struct {
	provider ForecastProvider
	prefs    PreferenceStore
	resolver *Resolver[WeatherSnapshot]
	batch    *Aggregator[WeatherSnapshot]
	ttl      time.Duration
	logger   *slog.Logger
}

// ForecastOptions tunes a ForecastService.
type ForecastOptions struct {
	TTL              time.Duration // cache lifetime, DefaultWeatherTTL when zero
	BatchConcurrency int           // max parallel resolves per batch, unbounded when <= 0
}

// NewForecastService creates a ForecastService. cache and prefs may be nil.
func NewForecastService(provider ForecastProvider, cache CacheStore, prefs PreferenceStore, opts ForecastOptions, logger *slog.Logger) *ForecastService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultWeatherTTL
	}
	s := &ForecastService{
		provider: provider,
		prefs:    prefs,
		resolver: NewResolver[WeatherSnapshot](cache, WeatherKeyPrefix, NormalizeCity, logger),
		ttl:      opts.TTL,
		logger:   logger,
	}
	s.batch = NewAggregator(s.GetWeatherForecast, opts.BatchConcurrency, logger)
	return s
}

// GetWeatherForecast returns the forecast for city, from cache when fresh.
func (s *ForecastService) GetWeatherForecast(ctx context.Context, city string) (WeatherSnapshot, error) {
	return s.resolver.Resolve(ctx, city, s.ttl, s.provider.FetchForecast)
}

// ResolveBatch fetches forecasts for each city. Results line up with cities.
func (s *ForecastService) ResolveBatch(ctx context.Context, cities []string) []BatchResult[WeatherSnapshot] {
	return s.batch.ResolveBatch(ctx, cities)
}

// GetWeatherForecastsForSession resolves every saved city of a session. An
// unknown session yields an empty result.
func (s *ForecastService) GetWeatherForecastsForSession(ctx context.Context, sessionID string) ([]BatchResult[WeatherSnapshot], error) {
	cities, err := s.SessionCities(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.ResolveBatch(ctx, cities), nil
}

// CurrentWeatherForSession is GetWeatherForecastsForSession reduced to the
// current conditions of each city.
func (s *ForecastService) CurrentWeatherForSession(ctx context.Context, sessionID string) ([]CityCurrentWeather, error) {
	results, err := s.GetWeatherForecastsForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]CityCurrentWeather, len(results))
	for i, r := range results {
		out[i] = CityCurrentWeather{City: r.Key, Error: r.Error}
		if r.Value != nil {
			current := r.Value.Current
			out[i].Current = &current
		}
	}
	return out, nil
}

// Invalidate drops the cached forecast for city.
func (s *ForecastService) Invalidate(ctx context.Context, city string) error {
	return s.resolver.Invalidate(ctx, city)
}

// SessionCities returns the cities saved for sessionID, empty for an unknown
// session.
func (s *ForecastService) SessionCities(ctx context.Context, sessionID string) ([]string, error) {
	if s.prefs == nil {
		return []string{}, nil
	}
	prefs, err := s.prefs.GetUserPreferences(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load preferences for session %q: %w", sessionID, err)
	}
	if prefs == nil {
		return []string{}, nil
	}
	return prefs.Cities, nil
}

// CitySearchService serves place lookups through the city-search:<query>
// cache, falling back to a static gazetteer when the provider fails.
type CitySearchService struct {
	provider  CitySearchProvider
	gazetteer *Gazetteer
	resolver  *Resolver[[]CitySearchResult]
	ttl       time.Duration
	logger    *slog.Logger
}

// NewCitySearchService creates a CitySearchService. A zero ttl means
// DefaultCitySearchTTL; cache and gazetteer may be nil.
func NewCitySearchService(provider CitySearchProvider, cache CacheStore, gazetteer *Gazetteer, ttl time.Duration, logger *slog.Logger) *CitySearchService {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = DefaultCitySearchTTL
	}
	return &CitySearchService{
		provider:  provider,
		gazetteer: gazetteer,
		resolver:  NewResolver[[]CitySearchResult](cache, CitySearchKeyPrefix, NormalizeQuery, logger),
		ttl:       ttl,
		logger:    logger,
	}
}

// Search returns places matching query. A query that normalizes to nothing
// returns an empty list without contacting the provider. When the provider
// call fails, gazetteer matches are returned instead of the error; a
// successful empty answer is returned as is.
func (s *CitySearchService) Search(ctx context.Context, query string) ([]CitySearchResult, error) {
	if NormalizeQuery(query) == "" {
		return []CitySearchResult{}, nil
	}

	key, err := s.resolver.Normalize(query)
	if err != nil {
		return nil, err
	}

	results, err := s.resolver.Resolve(ctx, query, s.ttl, s.fetch)
	if err == nil {
		return results, nil
	}

	fallback := s.gazetteer.Search(key)
	s.logger.Warn("city search provider failed; using gazetteer",
		"provider", s.provider.Name(),
		"query", key,
		"kind", KindOf(err).String(),
		"error", err,
		"matches", len(fallback),
	)
	return fallback, nil
}

func (s *CitySearchService) fetch(ctx context.Context, query string) ([]CitySearchResult, error) {
	results, err := s.provider.SearchCities(ctx, query)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []CitySearchResult{}
	}
	return results, nil
}
