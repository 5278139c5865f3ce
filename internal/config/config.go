// Package config loads and validates application configuration from a .env
// file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the explorer.
// Values are populated by Load from the environment; command-line flags may
// override them afterwards.
type Config struct {
	// DataDir is the directory holding the per-city CSV files. Defaults to ".".
	DataDir string

	// DatabaseURL is an optional Postgres connection string. When set, trips
	// are read from the database instead of the CSV files.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "warn".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the slog handler: "text" (default) or "json".
	LogFormat string

	// MetricsFile is an optional path the Prometheus textfile is written to
	// when the program exits. Empty disables it.
	MetricsFile string
}

// Load reads .env (if present) and the environment and returns a Config.
// Returns an error when a value is outside its allowed set.
func Load() (Config, error) {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := Config{
		DataDir:     getEnv("DATA_DIR", "."),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		MetricsFile: os.Getenv("METRICS_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	var invalid []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, fmt.Sprintf("LOG_LEVEL=%q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		invalid = append(invalid, fmt.Sprintf("LOG_FORMAT=%q", c.LogFormat))
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
