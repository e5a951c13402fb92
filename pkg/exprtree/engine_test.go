package exprtree

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/exprtree/pkg/exprtree/store"
)

func TestEngineRun(t *testing.T) {
	eng := New()

	res, err := eng.Run(context.Background(), "1+2*3-4")
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 3.0, res.Value)
	assert.Equal(t, "(((1)+((2)*(3)))-(4))", res.Inline)
	assert.Equal(t,
		"Op - Op + Constant 1 Op * Constant 2 Constant 3 Constant 4 ",
		string(res.Encoded))
}

func TestEngineRunWithRunID(t *testing.T) {
	eng := New()

	res, err := eng.Run(context.Background(), "2^10", WithRunID("run-123"))
	require.NoError(t, err)

	assert.Equal(t, "run-123", res.RunID)
	assert.Equal(t, 1024.0, res.Value)
}

func TestEngineRunGeneratesRunID(t *testing.T) {
	eng := New()

	first, err := eng.Run(context.Background(), "1+1")
	require.NoError(t, err)
	second, err := eng.Run(context.Background(), "1+1")
	require.NoError(t, err)

	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestEngineRunParseError(t *testing.T) {
	eng := New()

	_, err := eng.Run(context.Background(), "1+", WithRunID("run-err"))
	require.Error(t, err)

	var perr *PhaseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "parse", perr.Phase)
	assert.Equal(t, "run-err", perr.RunID)
	assert.ErrorIs(t, err, ErrEmptyExpression)
}

func TestEngineRunPersist(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	eng := New(
		WithStore(st),
		WithNamespace("tests"),
	)

	res, err := eng.Run(context.Background(), "3+4", WithPersist("sum"))
	require.NoError(t, err)

	data, err := st.Load("tests", "sum")
	require.NoError(t, err)
	assert.Equal(t, res.Encoded, data)

	// The persisted stream decodes back to the same tree.
	decoded, err := NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	assert.Equal(t, res.Inline, Inline(decoded))

	value, err := Evaluate(decoded)
	require.NoError(t, err)
	assert.Equal(t, res.Value, value)
}

func TestEngineRunPersistWithoutStore(t *testing.T) {
	eng := New()

	_, err := eng.Run(context.Background(), "3+4", WithPersist("sum"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStore)

	var perr *PhaseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "persist", perr.Phase)
}

func TestEngineRunWithoutPersistSkipsStore(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	eng := New(WithStore(st))

	_, err := eng.Run(context.Background(), "3+4")
	require.NoError(t, err)
	assert.Equal(t, 0, st.Len())
}

func TestEngineRunLogsToConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	eng := New(WithLogger(logger))

	_, err := eng.Run(context.Background(), "1+2", WithRunID("run-log"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run starting")
	assert.Contains(t, out, "run completed")
	assert.Contains(t, out, "run-log")
	assert.Contains(t, out, `"phase":"parse"`)
	assert.Contains(t, out, `"phase":"encode"`)
}

// Metrics and tracing enabled with no providers configured fall back
// to no-op OTel implementations; runs still succeed.
func TestEngineRunWithObservabilityEnabled(t *testing.T) {
	eng := New(WithMetrics(true), WithTracing(true))

	res, err := eng.Run(context.Background(), "6*7")
	require.NoError(t, err)
	assert.Equal(t, 42.0, res.Value)
}
