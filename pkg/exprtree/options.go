package exprtree

import (
	"log/slog"

	"github.com/randalmurphal/exprtree/pkg/exprtree/store"
)

// engineConfig holds configuration shared by all runs of an Engine.
type engineConfig struct {
	logger    *slog.Logger
	store     store.Store
	namespace string
	metrics   bool
	tracing   bool
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() engineConfig {
	return engineConfig{
		logger:    slog.Default(),
		namespace: "default",
	}
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithLogger sets the structured logger used for run and phase events.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStore sets the store used to persist encoded trees.
// Runs persist only when they also pass WithPersist.
func WithStore(s store.Store) Option {
	return func(c *engineConfig) {
		c.store = s
	}
}

// WithNamespace sets the store namespace for persisted trees.
// Default: "default".
func WithNamespace(ns string) Option {
	return func(c *engineConfig) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithMetrics enables OpenTelemetry metrics for runs and phases.
// The global OTel meter provider must be configured for metrics to be
// exported anywhere.
func WithMetrics(enabled bool) Option {
	return func(c *engineConfig) {
		c.metrics = enabled
	}
}

// WithTracing enables OpenTelemetry tracing: one span per run with a
// child span per phase. The global OTel tracer provider must be
// configured for spans to be exported anywhere.
func WithTracing(enabled bool) Option {
	return func(c *engineConfig) {
		c.tracing = enabled
	}
}

// runConfig holds configuration for a single Run call.
type runConfig struct {
	runID       string
	persistName string
}

// RunOption configures a single Run call.
type RunOption func(*runConfig)

// WithRunID sets the run identifier used in logs, traces, and errors.
// Auto-generated (UUID) if not set.
func WithRunID(id string) RunOption {
	return func(c *runConfig) {
		if id != "" {
			c.runID = id
		}
	}
}

// WithPersist saves the encoded tree to the engine's store under the
// given name after a successful run. Requires WithStore on the Engine;
// without one the run fails with ErrNoStore.
func WithPersist(name string) RunOption {
	return func(c *runConfig) {
		c.persistName = name
	}
}
