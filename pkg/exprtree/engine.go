package exprtree

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/exprtree/pkg/exprtree/observability"
)

// Engine runs the full expression pipeline: parse, evaluate, render,
// encode, and optionally persist the encoded stream.
//
// An Engine is immutable after New and safe for concurrent use as long
// as its store is.
type Engine struct {
	cfg     engineConfig
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// Result carries the outputs of one engine run. Value, Inline, and
// Encoded are independent derived views of the same tree.
type Result struct {
	// RunID identifies the run, for correlation with logs and traces.
	RunID string
	// Value is the evaluated numeric result.
	Value float64
	// Inline is the fully parenthesized single-line rendering.
	Inline string
	// Encoded is the serialized token stream.
	Encoded []byte
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		cfg:     cfg,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	if cfg.metrics {
		e.metrics = observability.NewMetricsRecorder()
	}
	if cfg.tracing {
		e.spans = observability.NewSpanManager()
	}
	return e
}

// Run parses input, evaluates it, renders the inline form, and encodes
// the token stream. With WithPersist, the encoded stream is also saved
// to the engine's store under (namespace, name).
//
// A failing phase returns a *PhaseError naming the phase and wrapping
// the cause.
func (e *Engine) Run(ctx context.Context, input string, opts ...RunOption) (Result, error) {
	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.runID == "" {
		rc.runID = uuid.New().String()
	}

	logger := observability.EnrichLogger(e.cfg.logger, rc.runID)
	start := time.Now()

	ctx, span := e.spans.StartRunSpan(ctx, rc.runID, len(input))
	observability.LogRunStart(logger, rc.runID, len(input))

	res, err := e.pipeline(ctx, logger, input, rc)

	elapsed := time.Since(start)
	durationMs := float64(elapsed.Milliseconds())
	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordRun(ctx, err == nil, elapsed)

	if err != nil {
		observability.LogRunError(logger, rc.runID, err, durationMs)
		return Result{}, err
	}
	observability.LogRunComplete(logger, rc.runID, res.Value, durationMs)
	return res, nil
}

// pipeline executes the run phases in order.
func (e *Engine) pipeline(ctx context.Context, logger *slog.Logger, input string, rc runConfig) (Result, error) {
	res := Result{RunID: rc.runID}

	var tree Expr
	err := e.phase(ctx, logger, rc.runID, "parse", func() error {
		var perr error
		tree, perr = Parse(input)
		return perr
	})
	if err != nil {
		return Result{}, err
	}

	err = e.phase(ctx, logger, rc.runID, "evaluate", func() error {
		var verr error
		res.Value, verr = Evaluate(tree)
		return verr
	})
	if err != nil {
		return Result{}, err
	}

	err = e.phase(ctx, logger, rc.runID, "render", func() error {
		res.Inline = Inline(tree)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	err = e.phase(ctx, logger, rc.runID, "encode", func() error {
		var buf bytes.Buffer
		if eerr := NewEncoder(&buf).Encode(tree); eerr != nil {
			return eerr
		}
		res.Encoded = buf.Bytes()
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	e.metrics.RecordEncodedSize(ctx, int64(len(res.Encoded)))

	if rc.persistName != "" {
		err = e.phase(ctx, logger, rc.runID, "persist", func() error {
			if e.cfg.store == nil {
				return ErrNoStore
			}
			return e.cfg.store.Save(e.cfg.namespace, rc.persistName, res.Encoded)
		})
		if err != nil {
			observability.LogPersistError(logger, rc.persistName, err)
			return Result{}, err
		}
		observability.LogPersist(logger, rc.persistName, len(res.Encoded))
	}

	return res, nil
}

// phase runs one pipeline phase with its span, metrics, and log entry.
func (e *Engine) phase(ctx context.Context, logger *slog.Logger, runID, name string, fn func() error) error {
	pctx, span := e.spans.StartPhaseSpan(ctx, name)
	start := time.Now()

	err := fn()

	elapsed := time.Since(start)
	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordPhase(pctx, name, elapsed, err)

	if err != nil {
		return &PhaseError{RunID: runID, Phase: name, Err: err}
	}
	observability.LogPhaseComplete(logger, name, float64(elapsed.Milliseconds()))
	return nil
}
