package exprtree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatValue renders a constant the way the wire format and both
// printers expect: the shortest form that round-trips float64.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteIndented writes the tree rooted at e to w, one node per line,
// indented one space per depth level. A Constant line is its value; a
// BinaryOp line is its operator symbol followed by the left and then
// the right subtree, each one level deeper.
func WriteIndented(w io.Writer, e Expr) error {
	return writeIndented(w, e, 0)
}

func writeIndented(w io.Writer, e Expr, depth int) error {
	pad := strings.Repeat(" ", depth)
	switch n := e.(type) {
	case *Constant:
		_, err := fmt.Fprintf(w, "%s%s\n", pad, formatValue(n.Value))
		return err
	case *BinaryOp:
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, n.Op); err != nil {
			return err
		}
		if err := writeIndented(w, n.Left, depth+1); err != nil {
			return err
		}
		return writeIndented(w, n.Right, depth+1)
	default:
		return fmt.Errorf("exprtree: invalid expression node %T", e)
	}
}

// Inline renders e fully parenthesized on a single line. Every node
// contributes exactly one pair of parentheses: a Constant renders as
// (value), a BinaryOp as (leftOPright) with no spaces around the
// operator. The rendering is lossless for tree structure.
func Inline(e Expr) string {
	var b strings.Builder
	inline(&b, e)
	return b.String()
}

func inline(b *strings.Builder, e Expr) {
	b.WriteByte('(')
	switch n := e.(type) {
	case *Constant:
		b.WriteString(formatValue(n.Value))
	case *BinaryOp:
		inline(b, n.Left)
		b.WriteByte(byte(n.Op))
		inline(b, n.Right)
	}
	b.WriteByte(')')
}
