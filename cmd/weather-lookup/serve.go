package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weather-lookup/internal/api/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, logger, components, err := setup(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := components.Close(); err != nil {
				logger.Error("close components", "error", err)
			}
		}()

		if components.Sweeper != nil {
			if err := components.Sweeper.Start(); err != nil {
				return err
			}
			defer components.Sweeper.Stop()
		}

		app := httpapi.NewApp(httpapi.AppConfig{Name: appName}, logger)
		httpapi.RegisterRoutes(app, httpapi.Services{
			Forecasts:   components.Forecasts,
			Cities:      components.Cities,
			Preferences: components.Preferences,
			Build: httpapi.BuildInfo{
				Name:        appName,
				Version:     version,
				Environment: cfg.Environment,
				StartedAt:   time.Now(),
			},
		})

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "port", cfg.Port)
			errCh <- app.Listen(":" + cfg.Port)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}
