package exprtree

// Operator identifies a binary arithmetic operation by its symbol.
type Operator byte

// The five supported operators.
const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpPow Operator = '^'
)

// Valid reports whether op is one of the five supported operators.
// Decoding accepts any single-byte operator token; validity is only
// enforced when the tree is evaluated.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return true
	}
	return false
}

// String returns the operator symbol.
func (op Operator) String() string {
	return string(byte(op))
}

// Expr is a node in an expression tree. It is a closed sum over two
// variants: *Constant (leaf) and *BinaryOp (internal node). Every
// operation on trees (Evaluate, Inline, WriteIndented, Encoder.Encode)
// switches exhaustively over these two types, so adding a variant
// forces every operation to be revisited.
//
// A tree has a single root; each BinaryOp exclusively owns its two
// children. Trees are never shared or cyclic.
type Expr interface {
	// sealed restricts implementations to this package.
	sealed()
}

// Constant is a numeric leaf node.
type Constant struct {
	Value float64
}

// BinaryOp applies Op to the values of its Left and Right subtrees.
type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (*Constant) sealed() {}
func (*BinaryOp) sealed() {}
