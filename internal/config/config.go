// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Preferences backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Backend  string // json or sqlite
	FilePath string // JSON preferences file
	DBPath   string // SQLite database
	LogPath  string
	LogLevel slog.Level
	Tick     time.Duration
}

// Load reads configuration from environment variables, after applying any
// .env file in the working directory. The result is not validated; call
// Validate after applying any overrides.
func Load() *Config {
	_ = godotenv.Load()

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "workday")

	return &Config{
		Backend:  strings.ToLower(getEnv("WORKDAY_STORE", BackendJSON)),
		FilePath: getEnv("WORKDAY_FILE", filepath.Join(dir, "tracker_config.json")),
		DBPath:   getEnv("WORKDAY_DB", filepath.Join(dir, "workday.db")),
		LogPath:  getEnv("WORKDAY_LOG_FILE", filepath.Join(dir, "workday.log")),
		LogLevel: getEnvLevel("WORKDAY_LOG_LEVEL", slog.LevelInfo),
		Tick:     getEnvDuration("WORKDAY_TICK", time.Second),
	}
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON:
		if c.FilePath == "" {
			return fmt.Errorf("WORKDAY_FILE cannot be empty")
		}
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("WORKDAY_DB cannot be empty")
		}
	default:
		return fmt.Errorf("WORKDAY_STORE must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Backend)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("WORKDAY_TICK must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return fallback
	}
	return lvl
}
