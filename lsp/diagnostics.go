package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lx/parser"
)

// Diagnose parses text and converts the parse errors into diagnostics.
// Parse errors carry no positions of their own, so ranges are recovered from
// the ErrorUnexpected nodes in the tree, zipped with the error list in
// document order; the EOF-shaped messages anchor at the end of the document.
func Diagnose(text string) []protocol.Diagnostic {
	result := parser.Parse(parser.Lex(text))
	nodes := errorNodes(result.Syntax())

	severity := protocol.DiagnosticSeverityError
	source := lsName

	var diagnostics []protocol.Diagnostic
	next := 0
	for _, msg := range result.Errors() {
		start, end := len(text), len(text)
		if msg != "Unexpected EOF" && next < len(nodes) {
			node := nodes[next]
			next++
			start, end = node.Offset(), node.Offset()+node.TextLen()
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: offsetToPosition(text, start),
				End:   offsetToPosition(text, end),
			},
			Severity: &severity,
			Source:   &source,
			Message:  msg,
		})
	}
	return diagnostics
}

// errorNodes collects the composite ErrorUnexpected nodes in document order.
func errorNodes(root *parser.SyntaxNode) []*parser.SyntaxNode {
	var nodes []*parser.SyntaxNode
	var walk func(n *parser.SyntaxNode)
	walk = func(n *parser.SyntaxNode) {
		if !n.IsToken() && n.Kind() == parser.TokenErrorUnexpected.Syntax() {
			nodes = append(nodes, n)
			return
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)
	return nodes
}

// offsetToPosition converts a byte offset into an LSP position (zero-based
// line, UTF-16 character).
func offsetToPosition(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	var line, character protocol.UInteger
	for _, r := range text[:offset] {
		if r == '\n' {
			line++
			character = 0
			continue
		}
		character += protocol.UInteger(len(utf16.Encode([]rune{r})))
	}
	return protocol.Position{Line: line, Character: character}
}
