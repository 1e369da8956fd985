// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every CrewLedger environment variable.
const EnvPrefix = "CREWLEDGER"

// Config holds everything the server needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port int `envconfig:"CREWLEDGER_PORT" default:"8080"`

	// DBPath is the SQLite database file location.
	DBPath string `envconfig:"CREWLEDGER_DB_PATH" default:"./data/crewledger.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"CREWLEDGER_LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured LogLevel onto a slog.Level, defaulting
// to info for unrecognized values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
