package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client  *http.Client
	Backoff BackoffConfig
}

// Option customises a provider.
type Option func(*options)

type options struct {
	baseURL string
	backoff BackoffConfig
}

// WithBaseURL overrides the provider endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithBackoff overrides the retry schedule.
func WithBackoff(b BackoffConfig) Option {
	return func(o *options) {
		o.backoff = b
	}
}

func defaultBackoff() BackoffConfig {
	return BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

func applyOptions(baseURL string, opts []Option) options {
	o := options{baseURL: baseURL, backoff: defaultBackoff()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// maxErrorBody caps how much of an error response body is kept for messages.
const maxErrorBody = 512

var (
	errServerError   = errors.New("server error")
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// doRequestWithResilience executes the HTTP request with retries, exponential
// backoff and a circuit breaker. Only transport failures and 5xx responses
// count against the breaker and are retried; any other non-2xx status is
// classified into a *weather.Error right away.
func doRequestWithResilience(
	ctx context.Context,
	op string,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func(ctx context.Context) (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, weather.NewError(weather.KindUnknown, op, "", errNoHTTPClient)
	}
	if cfg.Backoff.MaxRetries < 0 || cfg.Backoff.InitialInterval <= 0 {
		return nil, weather.NewError(weather.KindUnknown, op, "", errInvalidConfig)
	}

	var attempt int

	for {
		if err := ctx.Err(); err != nil {
			return nil, classifyTransportError(op, err)
		}

		req, err := buildRequest(ctx)
		if err != nil {
			return nil, weather.NewError(weather.KindUnknown, op, "build request", err)
		}

		result, err := cb.Execute(func() (interface{}, error) {
			resp, execErr := cfg.Client.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			if resp.StatusCode >= 500 {
				detail := readErrorBody(resp)
				return nil, fmt.Errorf("%w: %d %s", errServerError, resp.StatusCode, detail)
			}
			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, weather.NewError(weather.KindUnknown, op, "unexpected result type from circuit breaker", nil)
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				detail := readErrorBody(resp)
				return nil, statusError(op, resp.StatusCode, detail)
			}
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, weather.NewError(weather.KindUnknown, op, "", fmt.Errorf("%w: %v", errCircuitOpen, err))
		}

		if isTimeout(err) || attempt >= cfg.Backoff.MaxRetries {
			return nil, classifyTransportError(op, err)
		}

		delay := cfg.Backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > cfg.Backoff.MaxInterval && cfg.Backoff.MaxInterval > 0 {
			delay = cfg.Backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, classifyTransportError(op, ctx.Err())
		case <-timer.C:
		}

		attempt++
	}
}

// statusError maps a non-2xx provider status to an error kind.
func statusError(op string, status int, detail string) error {
	kind := weather.KindUnknown
	switch {
	case status == http.StatusBadRequest:
		kind = weather.KindValidation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = weather.KindAuth
	case status == http.StatusNotFound:
		kind = weather.KindNotFound
	case status == http.StatusTooManyRequests:
		kind = weather.KindRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		kind = weather.KindTimeout
	}

	msg := fmt.Sprintf("upstream status %d", status)
	if detail != "" {
		msg += ": " + detail
	}
	return weather.NewError(kind, op, msg, nil)
}

func classifyTransportError(op string, err error) error {
	if isTimeout(err) {
		return weather.NewError(weather.KindTimeout, op, "request timed out", err)
	}
	return weather.NewError(weather.KindUnknown, op, "", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// readErrorBody drains and closes resp.Body, returning a short message.
// Providers usually answer errors with {"message": "..."}.
func readErrorBody(resp *http.Response) string {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return string(data)
}

// decodeJSON decodes resp.Body into v and closes it.
func decodeJSON(op string, resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return weather.NewError(weather.KindUnknown, op, "malformed response", err)
	}
	return nil
}
