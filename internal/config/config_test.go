package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SESSION_MAX_AGE", "")
	t.Setenv("LIVE_ENABLED", "")
	t.Setenv("TRACING_ENABLED", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 30*24*time.Hour, cfg.SessionMaxAge)
	assert.True(t, cfg.LiveEnabled)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_MAX_AGE", "2h")
	t.Setenv("LIVE_ENABLED", "false")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Hour, cfg.SessionMaxAge)
	assert.False(t, cfg.LiveEnabled)
	assert.True(t, cfg.TracingEnabled)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short secret", map[string]string{"SESSION_SECRET": "too-short"}},
		{"bad max age", map[string]string{"SESSION_SECRET": testSecret, "SESSION_MAX_AGE": "forever"}},
		{"negative max age", map[string]string{"SESSION_SECRET": testSecret, "SESSION_MAX_AGE": "-1h"}},
		{"bad live flag", map[string]string{"SESSION_SECRET": testSecret, "LIVE_ENABLED": "maybe"}},
		{"bad tracing flag", map[string]string{"SESSION_SECRET": testSecret, "TRACING_ENABLED": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_MAX_AGE", "")
			t.Setenv("LIVE_ENABLED", "")
			t.Setenv("TRACING_ENABLED", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	cfg, err := config.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Equal(t, "required environment variable SESSION_SECRET is not set", err.Error())
}
