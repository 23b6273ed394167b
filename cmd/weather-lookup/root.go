package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-lookup/internal/app"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/logging"
)

// Set by the linker at build time.
var (
	version = "dev"
	commit  = "none"
)

const appName = "weather-lookup"

// envFile is the optional .env path given with --env-file.
var envFile string

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Cached weather forecasts and city lookup.",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file (default ./.env)")
	rootCmd.AddCommand(serveCmd, forecastCmd, searchCmd, versionCmd)
}

// setup loads configuration, builds the logger and wires the components.
func setup(ctx context.Context) (*config.AppConfig, *slog.Logger, *app.Components, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	if err := config.LoadDotEnv(files...); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(config.NewViper())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("configure logging: %w", err)
	}
	slog.SetDefault(logger)

	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, components, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version.",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", appName, version, commit)
	},
}
