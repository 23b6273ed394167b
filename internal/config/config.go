package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// City search providers.
const (
	SearchGeoapify = "geoapify"
	SearchBBC      = "bbc"
)

// AppConfig is the validated runtime configuration.
type AppConfig struct {
	Port        string
	Environment string
	LogLevel    string
	LogFormat   string

	CacheBackend        string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	CacheCommandTimeout time.Duration
	CacheSweepInterval  time.Duration

	HTTPTimeout time.Duration

	OpenWeatherAPIKey  string
	OpenWeatherURL     string
	GeoapifyAPIKey     string
	GeoapifyURL        string
	BBCAPIKey          string
	BBCURL             string
	CitySearchProvider string

	WeatherCacheTTL    time.Duration
	CitySearchCacheTTL time.Duration

	PreferenceBackend string
	PreferenceDSN     string

	BatchConcurrency int
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"ENVIRONMENT":           "development",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "text",
	"CACHE_BACKEND":         CacheMemory,
	"REDIS_ADDR":            "localhost:6379",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"CACHE_COMMAND_TIMEOUT": "500ms",
	"CACHE_SWEEP_INTERVAL":  "1m",
	"HTTP_TIMEOUT":          "10s",
	"OPEN_WEATHER_API_KEY":  "",
	"OPEN_WEATHER_URL":      "",
	"GEO_APIFY_API_KEY":     "",
	"GEO_APIFY_URL":         "",
	"BBC_API_KEY":           "",
	"BBC_URL":               "",
	"CITY_SEARCH_PROVIDER":  SearchGeoapify,
	"WEATHER_CACHE_TTL":     "600s",
	"CITY_SEARCH_CACHE_TTL": "12h",
	"PREFERENCE_BACKEND":    "sqlite",
	"PREFERENCE_DSN":        "weather-lookup.db",
	"BATCH_CONCURRENCY":     4,
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are given. Existing environment variables win. A missing file is not an
// error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()
	return v
}

// Load reads configuration from v, a fresh NewViper() when v is nil.
func Load(v *viper.Viper) (*AppConfig, error) {
	if v == nil {
		v = NewViper()
	}

	cfg := &AppConfig{
		Port:               v.GetString("PORT"),
		Environment:        v.GetString("ENVIRONMENT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		CacheBackend:       strings.ToLower(v.GetString("CACHE_BACKEND")),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		OpenWeatherAPIKey:  v.GetString("OPEN_WEATHER_API_KEY"),
		OpenWeatherURL:     v.GetString("OPEN_WEATHER_URL"),
		GeoapifyAPIKey:     v.GetString("GEO_APIFY_API_KEY"),
		GeoapifyURL:        v.GetString("GEO_APIFY_URL"),
		BBCAPIKey:          v.GetString("BBC_API_KEY"),
		BBCURL:             v.GetString("BBC_URL"),
		CitySearchProvider: strings.ToLower(v.GetString("CITY_SEARCH_PROVIDER")),
		PreferenceBackend:  strings.ToLower(v.GetString("PREFERENCE_BACKEND")),
		PreferenceDSN:      v.GetString("PREFERENCE_DSN"),
	}

	var err error
	if cfg.RedisDB, err = intValue(v, "REDIS_DB"); err != nil {
		return nil, err
	}
	if cfg.BatchConcurrency, err = intValue(v, "BATCH_CONCURRENCY"); err != nil {
		return nil, err
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"CACHE_COMMAND_TIMEOUT", &cfg.CacheCommandTimeout},
		{"CACHE_SWEEP_INTERVAL", &cfg.CacheSweepInterval},
		{"HTTP_TIMEOUT", &cfg.HTTPTimeout},
		{"WEATHER_CACHE_TTL", &cfg.WeatherCacheTTL},
		{"CITY_SEARCH_CACHE_TTL", &cfg.CitySearchCacheTTL},
	}
	for _, d := range durations {
		if *d.dst, err = ParseDuration(v.GetString(d.key)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerations and positive durations.
func (c *AppConfig) Validate() error {
	var errs []error

	switch c.CacheBackend {
	case CacheMemory, CacheRedis:
	default:
		errs = append(errs, fmt.Errorf("unsupported CACHE_BACKEND %q: must be memory or redis", c.CacheBackend))
	}
	switch c.CitySearchProvider {
	case SearchGeoapify, SearchBBC:
	default:
		errs = append(errs, fmt.Errorf("unsupported CITY_SEARCH_PROVIDER %q: must be geoapify or bbc", c.CitySearchProvider))
	}
	switch c.PreferenceBackend {
	case "sqlite", "mysql", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unsupported PREFERENCE_BACKEND %q: must be sqlite, mysql, or postgres", c.PreferenceBackend))
	}

	if c.WeatherCacheTTL <= 0 {
		errs = append(errs, errors.New("WEATHER_CACHE_TTL must be positive"))
	}
	if c.CitySearchCacheTTL <= 0 {
		errs = append(errs, errors.New("CITY_SEARCH_CACHE_TTL must be positive"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must be positive"))
	}
	if c.CacheSweepInterval <= 0 {
		errs = append(errs, errors.New("CACHE_SWEEP_INTERVAL must be positive"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}

	return errors.Join(errs...)
}

// ParseDuration accepts a Go duration ("600s", "12h") or a bare integer
// number of seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}

func intValue(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, raw)
	}
	return n, nil
}
