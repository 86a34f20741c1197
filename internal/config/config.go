// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the TripDiary API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for the trip document
	// store backing the fallback API. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// UploadURL is the media host endpoint that accepts multipart uploads.
	// Empty disables the upload route.
	UploadURL string

	// GeocodeURL is the reverse-geocoding endpoint. Defaults to the public
	// Nominatim instance.
	GeocodeURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// naming an invalid STORAGE_DRIVER value.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		UploadURL:   os.Getenv("UPLOAD_URL"),
		GeocodeURL:  getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org/reverse"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LocalConfig holds the settings for the local state store consumed by
// tripdiaryctl. Separate from Config because the local store needs no
// database or server settings.
type LocalConfig struct {
	// DataDir is where the local state database and legacy storage file
	// live. Defaults to ".".
	DataDir string

	// StorageDriver selects the durable backend for the local state store:
	// "sqlite" (default), "redis", or "none" (in-memory only).
	StorageDriver string

	// RedisAddr is the Redis host:port, used when StorageDriver is "redis".
	// Defaults to "localhost:6379".
	RedisAddr string
}

// LoadLocal reads the local-store configuration from environment
// variables. Returns an error naming an invalid STORAGE_DRIVER value.
func LoadLocal() (LocalConfig, error) {
	cfg := LocalConfig{
		DataDir:       getEnv("DATA_DIR", "."),
		StorageDriver: getEnv("STORAGE_DRIVER", "sqlite"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
	}

	switch cfg.StorageDriver {
	case "sqlite", "redis", "none":
	default:
		return LocalConfig{}, fmt.Errorf("invalid STORAGE_DRIVER %q: want sqlite, redis, or none", cfg.StorageDriver)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
