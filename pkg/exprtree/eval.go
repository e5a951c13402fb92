package exprtree

import (
	"fmt"
	"math"
)

// Evaluate computes the numeric value of the tree rooted at e.
//
// Arithmetic follows IEEE float64 semantics throughout: division by
// zero yields an infinity or NaN rather than an error, and ^ is
// math.Pow. Only an operator outside the supported set is an error,
// reported as *UnknownOperatorError.
func Evaluate(e Expr) (float64, error) {
	switch n := e.(type) {
	case *Constant:
		return n.Value, nil
	case *BinaryOp:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpPow:
			return math.Pow(left, right), nil
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			return left / right, nil
		default:
			return 0, &UnknownOperatorError{Op: n.Op}
		}
	default:
		return 0, fmt.Errorf("exprtree: invalid expression node %T", e)
	}
}
