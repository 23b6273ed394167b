package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var (
	forecastRefresh bool
	forecastSession string
)

var forecastCmd = &cobra.Command{
	Use:   "forecast [city...]",
	Short: "Show current weather for one or more cities.",
	Long: `Resolve forecasts through the cache and print the current conditions.
Cities come from the arguments and, with --session, from a saved session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && forecastSession == "" {
			return errors.New("give at least one city or --session")
		}

		ctx := cmd.Context()
		_, logger, components, err := setup(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = components.Close() }()

		req := forecastRequest{Cities: args, SessionID: forecastSession, Refresh: forecastRefresh}
		return runForecast(ctx, cmd.OutOrStdout(), components.Forecasts, req, logger)
	},
}

func init() {
	forecastCmd.Flags().BoolVar(&forecastRefresh, "refresh", false, "drop cached forecasts before resolving")
	forecastCmd.Flags().StringVar(&forecastSession, "session", "", "also resolve the cities saved for this session id")
}

type forecastRequest struct {
	Cities    []string
	SessionID string
	Refresh   bool
}

// runForecast resolves the requested cities, then the session's saved
// cities, and prints one table.
func runForecast(ctx context.Context, w io.Writer, svc *weather.ForecastService, req forecastRequest, logger *slog.Logger) error {
	if req.Refresh {
		cities := append([]string{}, req.Cities...)
		if req.SessionID != "" {
			saved, err := svc.SessionCities(ctx, req.SessionID)
			if err != nil {
				return err
			}
			cities = append(cities, saved...)
		}
		for _, city := range cities {
			if err := svc.Invalidate(ctx, city); err != nil && !errors.Is(err, weather.ErrValidation) {
				logger.Warn("invalidate failed", "city", city, "error", err)
			}
		}
	}

	results := svc.ResolveBatch(ctx, req.Cities)
	if req.SessionID != "" {
		sessionResults, err := svc.GetWeatherForecastsForSession(ctx, req.SessionID)
		if err != nil {
			return err
		}
		if len(sessionResults) == 0 {
			if _, err := fmt.Fprintf(w, "no saved cities for session %q\n", req.SessionID); err != nil {
				return err
			}
		}
		results = append(results, sessionResults...)
	}

	if len(results) == 0 {
		return nil
	}
	return renderForecasts(w, results)
}
