package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultBBCURL is the BBC locator service endpoint.
const DefaultBBCURL = "https://locator-service.api.bbci.co.uk/locations"

// BBCProvider implements weather.CitySearchProvider for the BBC locator.
type BBCProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewBBCProvider(client *http.Client, apiKey string, opts ...Option) *BBCProvider {
	o := applyOptions(DefaultBBCURL, opts)
	return &BBCProvider{
		name:    "bbc",
		apiKey:  apiKey,
		baseURL: o.baseURL,
		httpCfg: HTTPClientConfig{Client: client, Backoff: o.backoff},
		circuit: newBreaker("bbc"),
	}
}

func (p *BBCProvider) Name() string {
	return p.name
}

func (p *BBCProvider) SearchCities(ctx context.Context, query string) ([]weather.CitySearchResult, error) {
	const op = "bbc.search"

	if p.apiKey == "" {
		return nil, weather.NewError(weather.KindAuth, op, "api key is not configured", nil)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("api_key", p.apiKey)
		values.Set("s", query)
		values.Set("format", "json")
		values.Set("stack", "aws")
		values.Set("locale", "en")
		values.Set("filter", "international")
		values.Set("place-types", "settlement,airport,district")
		values.Set("order", "importance")
		values.Set("a", "true")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, op, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}

	var payload weather.BBCLocatorResponse
	if err := decodeJSON(op, resp, &payload); err != nil {
		return nil, err
	}
	return weather.TransformBBC(payload), nil
}
