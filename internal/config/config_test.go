package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origKey := os.Getenv("GOOGLE_API_KEY")
	defer os.Setenv("GOOGLE_API_KEY", origKey)

	os.Setenv("GOOGLE_API_KEY", "test-key")
	os.Setenv("SEARCH_MIN_RATING", "3.5")
	os.Setenv("SEARCH_RADIUS_METERS", "2000")
	os.Setenv("DB_HOST", "test-host")
	defer func() {
		os.Unsetenv("SEARCH_MIN_RATING")
		os.Unsetenv("SEARCH_RADIUS_METERS")
		os.Unsetenv("DB_HOST")
	}()

	cfg := Load()

	assert.Equal(t, "test-key", cfg.GoogleAPIKey)
	assert.Equal(t, 3.5, cfg.Search.MinRating)
	assert.Equal(t, 2000, cfg.Search.RadiusMeters)
	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.True(t, cfg.HistoryEnabled())
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SEARCH_MIN_RATING", "SEARCH_RADIUS_METERS", "MAP_ZOOM", "DB_HOST", "HTTP_CLIENT_TIMEOUT_SEC"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, 1000, cfg.Search.RadiusMeters)
	assert.Equal(t, 4.0, cfg.Search.MinRating)
	assert.Equal(t, 15, cfg.Search.MapZoom)
	assert.Equal(t, 10, cfg.HTTPTimeoutSec)
	assert.False(t, cfg.HistoryEnabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	os.Setenv(key, "4.5")
	assert.Equal(t, 4.5, getEnvFloat(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 4.0, getEnvFloat(key, 4.0))

	os.Unsetenv(key)
	assert.Equal(t, 4.0, getEnvFloat(key, 4.0))
}
