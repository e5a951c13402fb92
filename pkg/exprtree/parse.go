package exprtree

import "strconv"

// scanTiers are the operator groups Parse tries, in order. The first
// tier with a match anywhere in the input decides the split; within a
// tier the rightmost occurrence wins.
var scanTiers = [...][]Operator{
	{OpAdd, OpSub},
	{OpMul, OpDiv},
	{OpPow},
}

// Parse converts an infix arithmetic string into an expression tree.
//
// The grammar is deliberately small: integer literals at the leaves
// and the operators + - * / ^, with no whitespace, no parentheses,
// and no unary signs.
//
// The split operator is located by scanning right to left for the
// tiers {+,-}, then {*,/}, then {^}. Note that the rightmost-match
// rule does not implement textbook precedence for mixed +/- (or */)
// sequences; serialized trees produced by callers depend on the exact
// rule, so it is preserved as is.
//
// An empty input, including the empty right operand left behind by a
// trailing operator ("1+"), returns a *ParseError wrapping
// ErrEmptyExpression. A leaf that is not an integer literal returns a
// *ParseError wrapping the strconv error.
func Parse(text string) (Expr, error) {
	if text == "" {
		return nil, &ParseError{Input: text, Err: ErrEmptyExpression}
	}
	for _, tier := range scanTiers {
		for i := len(text) - 1; i >= 0; i-- {
			if !tierContains(tier, text[i]) {
				continue
			}
			left, err := Parse(text[:i])
			if err != nil {
				return nil, err
			}
			right, err := Parse(text[i+1:])
			if err != nil {
				return nil, err
			}
			return &BinaryOp{Op: Operator(text[i]), Left: left, Right: right}, nil
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, &ParseError{Input: text, Err: err}
	}
	return &Constant{Value: float64(n)}, nil
}

func tierContains(tier []Operator, c byte) bool {
	for _, op := range tier {
		if byte(op) == c {
			return true
		}
	}
	return false
}
