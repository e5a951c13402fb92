package exprtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateConstant(t *testing.T) {
	value, err := Evaluate(&Constant{Value: 3.5})
	require.NoError(t, err)
	assert.Equal(t, 3.5, value)
}

func TestEvaluateOperators(t *testing.T) {
	tests := []struct {
		name  string
		op    Operator
		left  float64
		right float64
		want  float64
	}{
		{"add", OpAdd, 3, 4, 7},
		{"sub", OpSub, 3, 4, -1},
		{"mul", OpMul, 3, 4, 12},
		{"div", OpDiv, 3, 4, 0.75},
		{"pow", OpPow, 2, 10, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &BinaryOp{
				Op:    tt.op,
				Left:  &Constant{Value: tt.left},
				Right: &Constant{Value: tt.right},
			}
			value, err := Evaluate(tree)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

// Division edge cases follow float64 semantics; they are values, not
// errors.
func TestEvaluateDivisionByZero(t *testing.T) {
	value, err := Evaluate(&BinaryOp{
		Op:    OpDiv,
		Left:  &Constant{Value: 1},
		Right: &Constant{Value: 0},
	})
	require.NoError(t, err)
	assert.True(t, math.IsInf(value, 1))

	value, err = Evaluate(&BinaryOp{
		Op:    OpDiv,
		Left:  &Constant{Value: -1},
		Right: &Constant{Value: 0},
	})
	require.NoError(t, err)
	assert.True(t, math.IsInf(value, -1))

	value, err = Evaluate(&BinaryOp{
		Op:    OpDiv,
		Left:  &Constant{Value: 0},
		Right: &Constant{Value: 0},
	})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(value))
}

func TestEvaluateNaNPropagates(t *testing.T) {
	nan := &BinaryOp{
		Op:    OpDiv,
		Left:  &Constant{Value: 0},
		Right: &Constant{Value: 0},
	}
	value, err := Evaluate(&BinaryOp{Op: OpAdd, Left: nan, Right: &Constant{Value: 1}})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(value))
}

func TestEvaluateUnknownOperator(t *testing.T) {
	tree := &BinaryOp{
		Op:    Operator('%'),
		Left:  &Constant{Value: 1},
		Right: &Constant{Value: 2},
	}

	_, err := Evaluate(tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperator)

	var uerr *UnknownOperatorError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, Operator('%'), uerr.Op)
}

func TestEvaluateUnknownOperatorInSubtree(t *testing.T) {
	tree := &BinaryOp{
		Op: OpAdd,
		Left: &BinaryOp{
			Op:    Operator('?'),
			Left:  &Constant{Value: 1},
			Right: &Constant{Value: 2},
		},
		Right: &Constant{Value: 3},
	}

	_, err := Evaluate(tree)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestOperatorValid(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub, OpMul, OpDiv, OpPow} {
		assert.True(t, op.Valid(), op.String())
	}
	assert.False(t, Operator('%').Valid())
	assert.False(t, Operator('x').Valid())
}
