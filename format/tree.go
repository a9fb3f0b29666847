package format

import (
	"io"

	"github.com/dhamidi/lx/parser"
)

// TreeEncoder writes the indented text dump of a syntax tree.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *parser.SyntaxNode) error {
	_, err := io.WriteString(e.w, node.String())
	return err
}
