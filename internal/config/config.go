package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the CLI and the local dashboard server.
type Config struct {
	// API is the remote CruiseBase API this client talks to.
	API APIConfig

	// Dashboard configures the local web dashboard server.
	Dashboard DashboardConfig

	// Cache configures the local read cache.
	Cache CacheConfig

	// Logging holds logging-related configuration.
	Logging LoggingConfig
}

// APIConfig holds remote API configuration.
type APIConfig struct {
	BaseURL string
}

// DashboardConfig holds local dashboard server configuration.
type DashboardConfig struct {
	ListenAddress string
	RouteTable    string // optional YAML route table path, empty = built-in table
	SyncSchedule  string // cron expression for the cache sync job
}

// CacheConfig holds local cache configuration.
type CacheConfig struct {
	Path string // sqlite file path
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	baseURL := os.Getenv("CRUISEBASE_API_URL")
	if baseURL == "" {
		baseURL = "https://api.cruisebase.com"
	}

	listenAddr := os.Getenv("CRUISEBASE_DASHBOARD_ADDR")
	if listenAddr == "" {
		listenAddr = "localhost:8090"
	}

	syncSchedule := os.Getenv("CRUISEBASE_SYNC_SCHEDULE")
	if syncSchedule == "" {
		syncSchedule = "@every 5m"
	}

	cachePath := os.Getenv("CRUISEBASE_CACHE_PATH")
	if cachePath == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cachePath = filepath.Join(homeDir, ".config", "cruisebase", "cache.sqlite")
		} else {
			cachePath = "cruisebase-cache.sqlite"
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		API: APIConfig{
			BaseURL: baseURL,
		},
		Dashboard: DashboardConfig{
			ListenAddress: listenAddr,
			RouteTable:    os.Getenv("CRUISEBASE_ROUTE_TABLE"),
			SyncSchedule:  syncSchedule,
		},
		Cache: CacheConfig{
			Path: cachePath,
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
