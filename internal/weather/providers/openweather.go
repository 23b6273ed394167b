package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultOpenWeatherURL is the 5 day / 3 hour forecast endpoint.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/forecast"

// OpenWeatherProvider implements weather.ForecastProvider for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...Option) *OpenWeatherProvider {
	o := applyOptions(DefaultOpenWeatherURL, opts)
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: o.baseURL,
		httpCfg: HTTPClientConfig{Client: client, Backoff: o.backoff},
		circuit: newBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// FetchForecast requests the metric forecast for city and maps it to a
// WeatherSnapshot.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, city string) (weather.WeatherSnapshot, error) {
	const op = "openweather.forecast"

	if p.apiKey == "" {
		return weather.WeatherSnapshot{}, weather.NewError(weather.KindAuth, op, "api key is not configured", nil)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, op, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		if weather.KindOf(err) == weather.KindNotFound {
			return weather.WeatherSnapshot{}, weather.NewError(weather.KindNotFound, op, fmt.Sprintf("city %q not found", city), nil)
		}
		return weather.WeatherSnapshot{}, err
	}

	var payload weather.ForecastPayload
	if err := decodeJSON(op, resp, &payload); err != nil {
		return weather.WeatherSnapshot{}, err
	}
	if err := payload.Validate(); err != nil {
		return weather.WeatherSnapshot{}, weather.NewError(weather.KindUnknown, op, "malformed forecast", err)
	}

	return weather.TransformForecast(payload), nil
}
