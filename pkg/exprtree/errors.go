package exprtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing.
var (
	// ErrEmptyExpression indicates Parse was called on an empty string.
	// This also surfaces when an operator is the last byte of the input
	// ("1+"), which leaves an empty right operand.
	ErrEmptyExpression = errors.New("empty expression")
)

// Sentinel errors for evaluation.
var (
	// ErrUnknownOperator indicates a BinaryOp carries an operator
	// outside the supported set.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Sentinel errors for decoding.
var (
	// ErrUnknownTag indicates the token stream names a variant with no
	// registered loader.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrMalformedToken indicates a token that a loader could not
	// interpret, such as a multi-byte operator token.
	ErrMalformedToken = errors.New("malformed token")
)

// Sentinel errors for engine runs.
var (
	// ErrNoStore indicates WithPersist was requested on an engine that
	// has no store configured.
	ErrNoStore = errors.New("no store configured")
)

// ParseError reports why an input string could not be parsed.
type ParseError struct {
	// Input is the substring that failed, not necessarily the full
	// original expression.
	Input string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownOperatorError reports evaluation of an unsupported operator.
type UnknownOperatorError struct {
	// Op is the offending operator byte.
	Op Operator
}

// Error implements the error interface.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("evaluate: unknown operator %q", byte(e.Op))
}

// Unwrap returns ErrUnknownOperator for errors.Is support.
func (e *UnknownOperatorError) Unwrap() error {
	return ErrUnknownOperator
}

// DecodeError reports a failure while reconstructing a tree from a
// token stream.
type DecodeError struct {
	// Token is the offending token, if one was read.
	Token string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("decode: unexpected token %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("decode: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PhaseError wraps a failure from one phase of an engine run.
type PhaseError struct {
	// RunID identifies the run that failed.
	RunID string
	// Phase is the pipeline phase ("parse", "evaluate", "render",
	// "encode", "persist").
	Phase string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("run %s: %s: %v", e.RunID, e.Phase, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PhaseError) Unwrap() error {
	return e.Err
}
