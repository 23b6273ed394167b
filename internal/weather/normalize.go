package weather

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinKeyLength and MaxKeyLength bound a normalized key, counted in runes.
	MinKeyLength = 1
	MaxKeyLength = 100

	// Cache key namespaces.
	WeatherKeyPrefix    = "weather"
	CitySearchKeyPrefix = "city-search"
)

// queryStripper removes characters that are never meaningful in a place query.
var queryStripper = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")

// NormalizeCity trims and lowercases a city name.
func NormalizeCity(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeQuery strips <>"'& and then trims and lowercases. Stripping runs
// first so the result never has leading or trailing spaces, which keeps the
// function idempotent.
func NormalizeQuery(raw string) string {
	return NormalizeCity(queryStripper.Replace(raw))
}

// ValidateKey checks a normalized key against the length bounds and rejects
// control characters.
func ValidateKey(key string) error {
	n := utf8.RuneCountInString(key)
	if n < MinKeyLength {
		return Validationf("value must not be empty")
	}
	if n > MaxKeyLength {
		return Validationf("value must be at most %d characters, got %d", MaxKeyLength, n)
	}
	if strings.IndexFunc(key, unicode.IsControl) >= 0 {
		return Validationf("value contains control characters")
	}
	return nil
}

// CacheKey joins a namespace and a normalized key.
func CacheKey(prefix, normalized string) string {
	return prefix + ":" + normalized
}
