package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Authors AuthorsConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// AuthorsConfig configures the outbound client for the authors service.
// Timeout bounds every call; there is a single attempt per call.
type AuthorsConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("AUTHORS_SERVICE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTHORS_SERVICE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Publications API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Authors: AuthorsConfig{
			BaseURL: getEnv("AUTHORS_SERVICE_URL", "http://localhost:8081"),
			Timeout: timeout,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for invalid combinations.
func (c *Config) Validate() error {
	if c.Authors.BaseURL == "" {
		return fmt.Errorf("AUTHORS_SERVICE_URL must be set")
	}
	if c.App.Environment == "production" {
		if os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
