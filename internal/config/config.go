// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppHost string `env:"APP_HOST" envDefault:"0.0.0.0"`
	AppPort int    `env:"APP_PORT" envDefault:"5000"`

	// Optional Redis for the user event stream; empty disables publishing.
	RedisURL string `env:"REDIS_URL"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Comma-separated list of allowed origins (e.g., "https://example.com,*.example.org")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
// Development mode logs at debug level and records panic stack traces.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.AppHost, strconv.Itoa(c.AppPort))
}

// EffectiveLogLevel returns LogLevel, lowered to debug in development
// unless explicitly set to something else.
func (c *Config) EffectiveLogLevel() string {
	if c.IsDevelopment() && c.LogLevel == "info" {
		return "debug"
	}
	return c.LogLevel
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Validate checks values that env parsing cannot.
func (c *Config) Validate() error {
	if c.AppPort < 0 || c.AppPort > 65535 {
		return fmt.Errorf("APP_PORT out of range: %d", c.AppPort)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be positive, got %d", c.MaxRequestBodySize)
	}
	return nil
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
