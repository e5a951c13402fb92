package exprtree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/randalmurphal/exprtree/pkg/exprtree/registry"
)

// Tags identifying node variants in the serialized stream. Tags are
// case-sensitive.
const (
	TagConstant = "Constant"
	TagOp       = "Op"
)

// Loader reconstructs one node, and recursively its subtree, from the
// decoder's token stream. A loader reads whatever tokens its variant
// needs; the stream carries no length or arity prefixes.
type Loader func(*Decoder) (Expr, error)

// Encoder writes expression trees as streams of whitespace-separated
// tokens: pre-order, depth-first, each node introduced by its tag.
//
//	Constant <float>
//	Op <operator-char> <left-subtree...> <right-subtree...>
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes e to the underlying writer. Every token is followed by
// a single space, so consecutive Encode calls produce one valid
// stream of multiple trees.
func (enc *Encoder) Encode(e Expr) error {
	switch n := e.(type) {
	case *Constant:
		_, err := fmt.Fprintf(enc.w, "%s %s ", TagConstant, formatValue(n.Value))
		return err
	case *BinaryOp:
		if _, err := fmt.Fprintf(enc.w, "%s %c ", TagOp, byte(n.Op)); err != nil {
			return err
		}
		if err := enc.Encode(n.Left); err != nil {
			return err
		}
		return enc.Encode(n.Right)
	default:
		return fmt.Errorf("exprtree: invalid expression node %T", e)
	}
}

// Decoder reads expression trees from a token stream.
//
// The loader table is fully populated at construction, so decoding
// never depends on which node variants the process happened to build
// beforehand. The table is thread-safe; a single Decoder is not, as it
// consumes one underlying stream.
type Decoder struct {
	scanner *bufio.Scanner
	loaders *registry.Registry[string, Loader]
}

// NewDecoder returns a Decoder reading whitespace-separated tokens
// from r, with loaders for TagConstant and TagOp installed.
func NewDecoder(r io.Reader) *Decoder {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	d := &Decoder{
		scanner: s,
		loaders: registry.New[string, Loader](),
	}
	d.loaders.RegisterMany(map[string]Loader{
		TagConstant: loadConstant,
		TagOp:       loadOp,
	})
	return d
}

// RegisterLoader installs or overwrites the loader for tag. It exists
// for callers extending the wire format with additional variants;
// registration is idempotent and there is no removal.
func (d *Decoder) RegisterLoader(tag string, fn Loader) {
	d.loaders.Register(tag, fn)
}

// Decode reads one tree from the stream. The next token must be a
// registered tag; its loader consumes the remaining tokens of the
// subtree. An unregistered tag returns a *DecodeError wrapping
// ErrUnknownTag, and a truncated stream returns a *DecodeError
// wrapping io.ErrUnexpectedEOF.
func (d *Decoder) Decode() (Expr, error) {
	tag, err := d.next()
	if err != nil {
		return nil, err
	}
	fn, ok := d.loaders.Get(tag)
	if !ok {
		return nil, &DecodeError{Token: tag, Err: ErrUnknownTag}
	}
	return fn(d)
}

// next returns the next whitespace-delimited token.
func (d *Decoder) next() (string, error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", &DecodeError{Err: err}
		}
		return "", &DecodeError{Err: io.ErrUnexpectedEOF}
	}
	return d.scanner.Text(), nil
}

// loadConstant reads a numeric token and builds a Constant.
func loadConstant(d *Decoder) (Expr, error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, &DecodeError{Token: tok, Err: err}
	}
	return &Constant{Value: v}, nil
}

// loadOp reads an operator token and two subtrees and builds a
// BinaryOp. Any single-byte operator decodes; validity is checked at
// evaluation, not here.
func loadOp(d *Decoder) (Expr, error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	if len(tok) != 1 {
		return nil, &DecodeError{Token: tok, Err: ErrMalformedToken}
	}
	left, err := d.Decode()
	if err != nil {
		return nil, err
	}
	right, err := d.Decode()
	if err != nil {
		return nil, err
	}
	return &BinaryOp{Op: Operator(tok[0]), Left: left, Right: right}, nil
}
