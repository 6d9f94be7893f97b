// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

var (
	ErrInvalidPort   = errors.New("PORT must be between 1 and 65535")
	ErrInvalidDriver = errors.New("STORE_DRIVER must be sqlite or redis")
	ErrInvalidDB     = errors.New("REDIS_DB must be a non-negative integer")
	ErrInvalidBool   = errors.New("METRICS_ENABLED must be a boolean")
)

// Config holds the server settings.
type Config struct {
	Port           int
	StoreDriver    string
	DBPath         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	MetricsEnabled bool
	StaticPath     string // Empty disables static file serving
	LogLevel       string
}

// Load reads an optional .env file from the working directory and then the
// environment. Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, reading environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() (*Config, error) {
	cfg := &Config{
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		DBPath:        getEnv("DB_PATH", "./data/ledger.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		StaticPath:    getEnv("STATIC_PATH", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port < 1 || port > 65535 {
		return nil, ErrInvalidPort
	}
	cfg.Port = port

	if cfg.StoreDriver != DriverSQLite && cfg.StoreDriver != DriverRedis {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDriver, cfg.StoreDriver)
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || db < 0 {
		return nil, ErrInvalidDB
	}
	cfg.RedisDB = db

	enabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return nil, ErrInvalidBool
	}
	cfg.MetricsEnabled = enabled

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
