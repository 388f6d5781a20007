package config

import (
	"os"
	"strconv"
)

// SearchConfig holds the tunables of the venue search pipeline.
type SearchConfig struct {
	RadiusMeters int
	MinRating    float64
	MapZoom      int
}

// DatabaseConfig holds PostgreSQL connection settings for the search history
// store. Leaving Host empty disables the store entirely.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is built once in main from environment variables and passed by reference;
// no component reads the environment on its own.
type AppConfig struct {
	Port string

	// GoogleAPIKey authorizes both Maps endpoints. Its absence is surfaced to
	// the user as a configuration error rather than crashing the process.
	GoogleAPIKey string

	// HTTPTimeoutSec bounds each outbound Google Maps call.
	HTTPTimeoutSec int

	Search   SearchConfig
	Database DatabaseConfig
}

// HistoryEnabled reports whether the search history store should be wired up.
func (c *AppConfig) HistoryEnabled() bool {
	return c.Database.Host != ""
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "8080"),
		GoogleAPIKey:   getEnv("GOOGLE_API_KEY", ""),
		HTTPTimeoutSec: getEnvInt("HTTP_CLIENT_TIMEOUT_SEC", 10),
		Search: SearchConfig{
			RadiusMeters: getEnvInt("SEARCH_RADIUS_METERS", 1000),
			MinRating:    getEnvFloat("SEARCH_MIN_RATING", 4.0),
			MapZoom:      getEnvInt("MAP_ZOOM", 15),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
