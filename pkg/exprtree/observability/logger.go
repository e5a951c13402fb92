// Package observability provides production-grade observability for
// exprtree: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// EnrichLogger adds run context to a logger.
// Returns a new logger with a run_id field.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123")
//	enriched.Info("parsing") // includes run_id
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
	)
}

// LogRunStart logs the start of an engine run.
func LogRunStart(logger *slog.Logger, runID string, inputLen int) {
	if logger == nil {
		return
	}
	logger.Info("run starting",
		slog.String("run_id", runID),
		slog.Int("input_len", inputLen),
	)
}

// LogRunComplete logs successful run completion.
func LogRunComplete(logger *slog.Logger, runID string, value float64, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("run completed",
		slog.String("run_id", runID),
		slog.Float64("value", value),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogRunError logs run failure.
func LogRunError(logger *slog.Logger, runID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("run failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogPhaseComplete logs completion of one pipeline phase.
func LogPhaseComplete(logger *slog.Logger, phase string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("phase completed",
		slog.String("phase", phase),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogPersist logs a persisted expression.
func LogPersist(logger *slog.Logger, name string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("expression persisted",
		slog.String("name", name),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogPersistError logs a persistence failure.
func LogPersistError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("persist failed",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}
