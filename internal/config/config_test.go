package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "localhost:6379", cfg.Redis.Host)
	assert.Equal(t, "http://localhost:8081", cfg.Authors.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Authors.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTHORS_SERVICE_URL", "http://authors.internal:9000")
	t.Setenv("AUTHORS_SERVICE_TIMEOUT", "750ms")
	t.Setenv("APP_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://authors.internal:9000", cfg.Authors.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Authors.Timeout)
	assert.Equal(t, "3000", cfg.App.Port)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("AUTHORS_SERVICE_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_ProductionRequiresDBPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	_, err = Load()
	assert.NoError(t, err)
}
