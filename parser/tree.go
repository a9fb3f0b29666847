package parser

import (
	"fmt"
	"strings"
)

// SyntaxNode is a read-only, parent-linked, offset-annotated view over a
// green element. Views are derived fresh from a finished green root and never
// feed back into it; multiple views over the same tree are interchangeable.
type SyntaxNode struct {
	green  GreenElement
	parent *SyntaxNode
	offset int
}

// NewSyntaxNode returns a view rooted at the given green node, at offset 0.
func NewSyntaxNode(root *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: root}
}

func (n *SyntaxNode) Kind() SyntaxKind    { return n.green.Kind() }
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// Offset is the byte offset of this node's text within the full source.
func (n *SyntaxNode) Offset() int { return n.offset }

// TextLen is the length in bytes of the text this node covers.
func (n *SyntaxNode) TextLen() int { return n.green.TextLen() }

// Green exposes the underlying immutable element.
func (n *SyntaxNode) Green() GreenElement { return n.green }

// IsToken reports whether this view wraps a leaf.
func (n *SyntaxNode) IsToken() bool {
	_, ok := n.green.(GreenToken)
	return ok
}

func (n *SyntaxNode) Text() string {
	switch g := n.green.(type) {
	case GreenToken:
		return g.Text()
	case *GreenNode:
		return g.Text()
	}
	return ""
}

// Children computes the child views on demand. Each call returns a fresh
// slice; offsets accumulate from this node's own offset.
func (n *SyntaxNode) Children() []*SyntaxNode {
	node, ok := n.green.(*GreenNode)
	if !ok {
		return nil
	}
	children := make([]*SyntaxNode, 0, len(node.Children()))
	offset := n.offset
	for _, g := range node.Children() {
		children = append(children, &SyntaxNode{green: g, parent: n, offset: offset})
		offset += g.TextLen()
	}
	return children
}

// FirstChildOfKind returns the first direct child with the given kind, or nil.
func (n *SyntaxNode) FirstChildOfKind(kind SyntaxKind) *SyntaxNode {
	for _, child := range n.Children() {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// String renders an indented dump of the subtree, one element per line:
//
//	Root@0..5
//	  Equality@0..5
//	    ...
//	      Number@0..1 "1"
func (n *SyntaxNode) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *SyntaxNode) dump(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	fmt.Fprintf(sb, "%s@%d..%d", n.Kind(), n.Offset(), n.Offset()+n.TextLen())
	if n.IsToken() {
		fmt.Fprintf(sb, " %q", n.Text())
	}
	sb.WriteByte('\n')
	for _, child := range n.Children() {
		child.dump(sb, indent+1)
	}
}
