package weather

import (
	"context"
	"time"
)

// CacheStore is a key/value store with per-entry expiry. Implementations
// enforce the TTL themselves; callers never inspect entry age.
//
//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
type CacheStore interface {
	// Get returns the value for key. found is false when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, overwriting any previous value. A ttl <= 0
	// stores the entry without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ForecastProvider fetches a multi-day forecast for a city from a weather API.
type ForecastProvider interface {
	Name() string
	FetchForecast(ctx context.Context, city string) (WeatherSnapshot, error)
}

// CitySearchProvider looks up places matching a free-text query.
type CitySearchProvider interface {
	Name() string
	SearchCities(ctx context.Context, query string) ([]CitySearchResult, error)
}

// PreferenceStore is the read side of the saved-cities store.
type PreferenceStore interface {
	// GetUserPreferences returns nil, nil for an unknown session.
	GetUserPreferences(ctx context.Context, sessionID string) (*Preferences, error)
}
