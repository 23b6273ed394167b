package httpapi

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ForecastService is the forecast side of the weather core.
type ForecastService interface {
	GetWeatherForecast(ctx context.Context, city string) (weather.WeatherSnapshot, error)
	ResolveBatch(ctx context.Context, cities []string) []weather.BatchResult[weather.WeatherSnapshot]
	CurrentWeatherForSession(ctx context.Context, sessionID string) ([]weather.CityCurrentWeather, error)
}

// CitySearcher looks up places by free text.
type CitySearcher interface {
	Search(ctx context.Context, query string) ([]weather.CitySearchResult, error)
}

// PreferenceManager reads and edits a session's saved cities.
type PreferenceManager interface {
	weather.PreferenceStore
	AddCity(ctx context.Context, sessionID, city string) (*weather.Preferences, error)
	RemoveCity(ctx context.Context, sessionID, city string) (*weather.Preferences, error)
}

// BuildInfo is reported by the health endpoint.
type BuildInfo struct {
	Name        string
	Version     string
	Environment string
	StartedAt   time.Time
}

// Services bundles the handlers' collaborators.
type Services struct {
	Forecasts   ForecastService
	Cities      CitySearcher
	Preferences PreferenceManager
	Build       BuildInfo
}

// successResponse wraps every successful body.
type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func success(c *fiber.Ctx, data any) error {
	return c.JSON(successResponse{Status: "SUCCESS", Data: data})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	app.Get("/health", healthHandler(svc.Build))

	v1 := app.Group("/api/v1")

	v1.Get("/weather/:city/forecast", func(c *fiber.Ctx) error {
		snapshot, err := svc.Forecasts.GetWeatherForecast(c.UserContext(), c.Params("city"))
		if err != nil {
			return err
		}
		return success(c, snapshot)
	})

	v1.Post("/weather/batch", func(c *fiber.Ctx) error {
		var req batchRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		return success(c, svc.Forecasts.ResolveBatch(c.UserContext(), req.Cities))
	})

	v1.Get("/cities/search", func(c *fiber.Ctx) error {
		results, err := svc.Cities.Search(c.UserContext(), c.Query("query"))
		if err != nil {
			return err
		}
		return success(c, results)
	})

	user := v1.Group("/user")

	user.Post("/", func(c *fiber.Ctx) error {
		var req preferenceRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		prefs, err := svc.Preferences.AddCity(c.UserContext(), req.SessionID, req.City)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(successResponse{Status: "SUCCESS", Data: prefs})
	})

	user.Delete("/remove-city", func(c *fiber.Ctx) error {
		var req preferenceRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		prefs, err := svc.Preferences.RemoveCity(c.UserContext(), req.SessionID, req.City)
		if err != nil {
			return err
		}
		return success(c, prefs)
	})

	user.Get("/preferences/:sessionId", func(c *fiber.Ctx) error {
		sessionID := c.Params("sessionId")
		prefs, err := svc.Preferences.GetUserPreferences(c.UserContext(), sessionID)
		if err != nil {
			return err
		}
		if prefs == nil {
			prefs = &weather.Preferences{SessionID: sessionID, Cities: []string{}}
		}
		return success(c, prefs)
	})

	user.Get("/preferences/:sessionId/weather", func(c *fiber.Ctx) error {
		current, err := svc.Forecasts.CurrentWeatherForSession(c.UserContext(), c.Params("sessionId"))
		if err != nil {
			return err
		}
		return success(c, current)
	})
}

func healthHandler(info BuildInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now().UTC()
		return c.JSON(fiber.Map{
			"status":      "ok",
			"name":        info.Name,
			"version":     info.Version,
			"environment": info.Environment,
			"uptime":      now.Sub(info.StartedAt).Milliseconds(),
			"timestamp":   now.Format(time.RFC3339),
		})
	}
}

// batchRequest is the body of POST /weather/batch. Individual city names are
// validated by the resolver so a bad entry only fails its own item.
type batchRequest struct {
	Cities []string `json:"cities" validate:"required,min=1,max=50"`
}

// preferenceRequest is the body of the add and remove city endpoints.
type preferenceRequest struct {
	SessionID string `json:"sessionId" validate:"required,max=100"`
	City      string `json:"city" validate:"required,max=100"`
}

// bind parses the JSON body into dst and validates it.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validate.Struct(dst)
}
