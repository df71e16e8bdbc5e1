package config_test

import (
	"log/slog"
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "LOG_LEVEL", "ACTIVITY_LOG_CAPACITY", "SEED_SAMPLE_DATA", "RATE_LIMIT", "RATE_LIMIT_REDIS_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 50, cfg.ActivityLogCapacity)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Empty(t, cfg.RateLimitRedisURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ACTIVITY_LOG_CAPACITY", "10")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 10, cfg.ActivityLogCapacity)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("ACTIVITY_LOG_CAPACITY", "-3")
	t.Setenv("RATE_LIMIT", "fast")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 50, cfg.ActivityLogCapacity)
	assert.Equal(t, "300-M", cfg.RateLimit)
}
