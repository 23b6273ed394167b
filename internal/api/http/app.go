package httpapi

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppConfig holds the Fiber settings the service cares about.
type AppConfig struct {
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// accessLogFormat is the fiber logger line carried in each access log record.
const accessLogFormat = "${status} ${method} ${path} ${latency}"

// NewApp builds a Fiber app with the JSON error handler, access logging and
// panic recovery installed.
func NewApp(cfg AppConfig, log *slog.Logger) *fiber.App {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Name == "" {
		cfg.Name = "weather-lookup"
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		UnescapePath:          true,
		ErrorHandler:          ErrorHandler(log),
	})

	// Global middleware. The logger sits outside recover so panics still
	// produce an access line with the final status.
	app.Use(logger.New(logger.Config{
		Format:        accessLogFormat,
		Output:        io.Discard,
		DisableColors: true,
		Done: func(c *fiber.Ctx, line []byte) {
			log.Info("http request",
				"method", c.Method(),
				"path", c.Path(),
				"status", c.Response().StatusCode(),
				"access", strings.TrimSpace(string(line)),
			)
		},
	}))
	app.Use(recover.New())
	return app
}
