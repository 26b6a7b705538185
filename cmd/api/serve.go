package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/userdir/userdir/internal/config"
	"github.com/userdir/userdir/internal/events"
	"github.com/userdir/userdir/internal/server"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := initLogger(os.Stdout, cfg)

	var app *application
	if cfg.RedisURL != "" {
		client, err := events.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
			return err
		}
		logger.Info("connected to Redis", slog.String("redis_url", events.RedactURL(cfg.RedisURL)))
		app = newApplication(cfg, logger, client)
	} else {
		logger.Info("REDIS_URL not set, user events disabled")
		app = newApplication(cfg, logger, nil)
	}

	srv := server.New(
		app.router,
		cfg.Addr(),
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	if app.redis != nil {
		client := app.redis
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return client.Close()
		})
	}

	logger.Info("starting server",
		"addr", cfg.Addr(),
		"env", cfg.AppEnv,
		"users", app.store.Len(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.AppHost = flagHost
	}
	if flags.Changed("port") {
		cfg.AppPort = flagPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// initLogger initializes the slog logger based on configuration.
func initLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.EffectiveLogLevel()),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
