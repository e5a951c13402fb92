/*
Package exprtree parses, evaluates, renders, and serializes arithmetic
expression trees.

# Overview

An expression tree is a closed sum over two node variants: Constant
(numeric leaf) and BinaryOp (one of + - * / ^ with exactly two
children). The package provides four operations over trees, each an
exhaustive switch over the variants:

  - Evaluate: compute the float64 value
  - Inline: fully parenthesized single-line rendering
  - WriteIndented: multi-line rendering, one space of indent per depth
  - Encoder/Decoder: round-trip trees through a whitespace-separated
    token stream

# Parsing

Parse builds a tree from a flat infix string of integer literals and
the five operators, with no whitespace or parentheses:

	tree, err := exprtree.Parse("1+2*3-4")
	if err != nil {
	    log.Fatal(err)
	}

	value, err := exprtree.Evaluate(tree)   // 3
	fmt.Println(exprtree.Inline(tree))      // (((1)+((2)*(3)))-(4))

The parser locates its split operator by scanning right to left for
the tiers {+,-}, then {*,/}, then {^}, taking the rightmost match.
This rule is part of the package's compatibility contract (serialized
streams produced under it must keep meaning the same trees), so it is
preserved exactly even where it differs from textbook precedence.

# Serialization

Trees serialize to self-describing token streams, pre-order and
depth-first:

	1+2 -> "Op + Constant 1 Constant 2 "

Decoding is driven by a loader table mapping tags to loader functions.
The table is fully populated when the Decoder is constructed, and
custom variants can be registered:

	dec := exprtree.NewDecoder(strings.NewReader(stream))
	tree, err := dec.Decode()

An unregistered tag yields an error satisfying
errors.Is(err, exprtree.ErrUnknownTag).

# Engine

Engine ties the pipeline together with structured logging, optional
OpenTelemetry metrics and tracing, and optional persistence of the
encoded stream:

	eng := exprtree.New(
	    exprtree.WithLogger(logger),
	    exprtree.WithStore(st),
	    exprtree.WithNamespace("reports"),
	)

	res, err := eng.Run(ctx, "2^10", exprtree.WithPersist("kilo"))

# Errors

Failures are explicit error values, never process termination.
Sentinels (ErrEmptyExpression, ErrUnknownOperator, ErrUnknownTag,
ErrMalformedToken) support errors.Is; wrapper types (ParseError,
DecodeError, UnknownOperatorError, PhaseError) carry context and
support errors.As. Division by zero is not an error: arithmetic
follows IEEE float64 semantics and propagates infinities and NaNs.
*/
package exprtree
