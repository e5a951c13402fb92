package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/randalmurphal/exprtree/pkg/exprtree/store"
)

// Config holds engine configuration.
type Config struct {
	// Namespace groups persisted expressions in the store.
	Namespace string `yaml:"namespace" json:"namespace"`

	// Store selects and configures the persistence backend.
	Store StoreConfig `yaml:"store" json:"store"`

	// Log configures the structured logger.
	Log LogConfig `yaml:"log" json:"log"`

	// Metrics enables OpenTelemetry metrics.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OpenTelemetry tracing.
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// StoreConfig selects a persistence backend.
type StoreConfig struct {
	// Driver is "memory" or "sqlite". Empty means "memory".
	Driver string `yaml:"driver" json:"driver"`

	// Path is the database file path. Required for the sqlite driver;
	// ":memory:" is accepted for testing.
	Path string `yaml:"path" json:"path"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error". Empty means "info".
	Level string `yaml:"level" json:"level"`

	// Format is "text" or "json". Empty means "text".
	Format string `yaml:"format" json:"format"`
}

// Default returns the default configuration: memory store, text logs
// at info level, metrics and tracing disabled.
func Default() Config {
	return Config{
		Namespace: "default",
		Store:     StoreConfig{Driver: "memory"},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace cannot be empty")
	}
	switch c.Store.Driver {
	case "", "memory":
	case "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("sqlite driver requires store.path")
		}
	default:
		return fmt.Errorf("unknown store driver: %s", c.Store.Driver)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}
	return nil
}

// OpenStore builds the configured store.
func (c Config) OpenStore() (store.Store, error) {
	switch c.Store.Driver {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "sqlite":
		return store.NewSQLiteStore(c.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", c.Store.Driver)
	}
}

// NewLogger builds an slog.Logger writing to w per the log settings.
func (lc LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.slogLevel()}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (lc LogConfig) slogLevel() slog.Level {
	switch lc.Level {
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
