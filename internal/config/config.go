package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production

	// Session
	SessionSecret string
	SessionMaxAge time.Duration

	// Live navigation over websocket
	LiveEnabled bool

	// Export trace spans to stderr
	TracingEnabled bool
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret, err := requireEnv("SESSION_SECRET")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		SessionSecret: secret,
		SessionMaxAge: 30 * 24 * time.Hour,

		LiveEnabled: true,
	}

	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SESSION_MAX_AGE: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SESSION_MAX_AGE must be positive, got %s", d)
		}
		cfg.SessionMaxAge = d
	}

	if v := os.Getenv("LIVE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LIVE_ENABLED: %w", err)
		}
		cfg.LiveEnabled = enabled
	}

	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("TRACING_ENABLED: %w", err)
		}
		cfg.TracingEnabled = enabled
	}

	// 32 bytes hash key + 32 bytes block key
	if len(cfg.SessionSecret) < 64 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(cfg.SessionSecret))
	}

	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// requireEnv returns the value of an environment variable or an error if not set.
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}
