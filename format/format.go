// Package format renders lx token streams and syntax trees for human and
// machine consumption.
package format

import "github.com/dhamidi/lx/parser"

// Encoder writes one syntax tree to an output stream.
type Encoder interface {
	Encode(node *parser.SyntaxNode) error
}
