package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultGeoapifyURL is the Geoapify forward geocoding endpoint.
const DefaultGeoapifyURL = "https://api.geoapify.com/v1/geocode/search"

// geoapifyLimit caps the number of places requested per query.
const geoapifyLimit = 40

// GeoapifyProvider implements weather.CitySearchProvider for Geoapify.
type GeoapifyProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewGeoapifyProvider(client *http.Client, apiKey string, opts ...Option) *GeoapifyProvider {
	o := applyOptions(DefaultGeoapifyURL, opts)
	return &GeoapifyProvider{
		name:    "geoapify",
		apiKey:  apiKey,
		baseURL: o.baseURL,
		httpCfg: HTTPClientConfig{Client: client, Backoff: o.backoff},
		circuit: newBreaker("geoapify"),
	}
}

func (p *GeoapifyProvider) Name() string {
	return p.name
}

func (p *GeoapifyProvider) SearchCities(ctx context.Context, query string) ([]weather.CitySearchResult, error) {
	const op = "geoapify.search"

	if p.apiKey == "" {
		return nil, weather.NewError(weather.KindAuth, op, "api key is not configured", nil)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("text", query)
		values.Set("format", "json")
		values.Set("apiKey", p.apiKey)
		values.Set("limit", fmt.Sprint(geoapifyLimit))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, op, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}

	var payload weather.GeoapifyResponse
	if err := decodeJSON(op, resp, &payload); err != nil {
		return nil, err
	}
	return weather.TransformGeoapify(payload), nil
}
