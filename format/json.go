package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/lx/parser"
)

// JSONEncoder writes a syntax tree as nested JSON objects mirroring the
// tree structure.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *parser.SyntaxNode) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node *parser.SyntaxNode) ([]byte, error) {
	return json.MarshalIndent(treeToJSON(node), "", "  ")
}

type treeJSONNode struct {
	Kind     string          `json:"kind"`
	Offset   int             `json:"offset"`
	Length   int             `json:"length"`
	Text     string          `json:"text,omitempty"`
	Children []*treeJSONNode `json:"children,omitempty"`
}

func treeToJSON(n *parser.SyntaxNode) *treeJSONNode {
	jn := &treeJSONNode{
		Kind:   n.Kind().String(),
		Offset: n.Offset(),
		Length: n.TextLen(),
	}
	if n.IsToken() {
		jn.Text = n.Text()
		return jn
	}
	for _, child := range n.Children() {
		jn.Children = append(jn.Children, treeToJSON(child))
	}
	return jn
}
