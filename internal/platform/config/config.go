package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort        = "8080"
	defaultRateLimit   = "300-M"
	defaultCORSOrigins = "http://localhost:3000"
)

// Config holds application configuration.
type Config struct {
	Port                string
	IsProduction        bool
	LogLevel            slog.Level
	ActivityLogCapacity int
	SeedSampleData      bool
	RateLimit           string // ulule/limiter format, e.g. "300-M"
	RateLimitRedisURL   string // empty keeps limiter counters in memory
	CORSAllowedOrigins  []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ACTIVITY_LOG_CAPACITY", domain.DefaultActivityCapacity)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("RATE_LIMIT_REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)

	// Environment variables override the defaults (and anything loaded from .env).
	v.AutomaticEnv()

	cfg := &Config{
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		SeedSampleData:    v.GetBool("SEED_SAMPLE_DATA"),
		RateLimitRedisURL: v.GetString("RATE_LIMIT_REDIS_URL"),
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	cfg.ActivityLogCapacity = v.GetInt("ACTIVITY_LOG_CAPACITY")
	if cfg.ActivityLogCapacity < 1 {
		log.Printf("Warning: Invalid value for ACTIVITY_LOG_CAPACITY (%d). Defaulting to %d.\n", cfg.ActivityLogCapacity, domain.DefaultActivityCapacity)
		cfg.ActivityLogCapacity = domain.DefaultActivityCapacity
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSOrigins}
	}

	return cfg, nil
}
