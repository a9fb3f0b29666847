package parser

import "strings"

// GreenElement is either a GreenToken leaf or a *GreenNode. Green elements
// carry a kind and exact text but no offsets or parent links, so identical
// subtrees can be shared; nothing is mutated after FinishNode.
type GreenElement interface {
	Kind() SyntaxKind
	TextLen() int
	writeText(sb *strings.Builder)
}

// GreenToken is a leaf carrying a terminal kind and its exact source text.
type GreenToken struct {
	kind SyntaxKind
	text string
}

func (t GreenToken) Kind() SyntaxKind { return t.kind }
func (t GreenToken) Text() string     { return t.text }
func (t GreenToken) TextLen() int     { return len(t.text) }

func (t GreenToken) writeText(sb *strings.Builder) {
	sb.WriteString(t.text)
}

// GreenNode is a finalized composite node. Its children never change once
// FinishNode has run.
type GreenNode struct {
	kind     SyntaxKind
	children []GreenElement
	textLen  int
}

func (n *GreenNode) Kind() SyntaxKind { return n.kind }
func (n *GreenNode) TextLen() int     { return n.textLen }

// Children returns the ordered child elements. Callers must treat the slice
// as read-only.
func (n *GreenNode) Children() []GreenElement { return n.children }

// Text concatenates the leaf texts in depth-first order. For a tree built
// from a Lex result this reproduces the original input exactly.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		c.writeText(sb)
	}
}

// Builder assembles an immutable green tree from a flat stream of
// start-node/token/finish-node events. Nodes must be finished in strict LIFO
// order relative to how they were started; misuse indicates a bug in the
// caller and panics rather than surfacing as a parse error.
type Builder struct {
	stack []openNode
	root  *GreenNode
}

type openNode struct {
	kind     SyntaxKind
	children []GreenElement
}

// StartNode pushes a new open composite node.
func (b *Builder) StartNode(kind SyntaxKind) {
	b.stack = append(b.stack, openNode{kind: kind})
}

// Token appends a leaf to the node on top of the stack.
func (b *Builder) Token(kind SyntaxKind, text string) {
	if len(b.stack) == 0 {
		panic("parser: Token without an open node")
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, GreenToken{kind: kind, text: text})
}

// FinishNode pops the top node, finalizes it, and attaches it to the new top
// of the stack. When the stack empties the finished node becomes the root.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("parser: FinishNode without matching StartNode")
	}
	open := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	textLen := 0
	for _, c := range open.children {
		textLen += c.TextLen()
	}
	node := &GreenNode{kind: open.kind, children: open.children, textLen: textLen}

	if len(b.stack) == 0 {
		if b.root != nil {
			panic("parser: more than one root node")
		}
		b.root = node
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, node)
}

// Finish returns the completed root. The builder is spent afterwards.
func (b *Builder) Finish() *GreenNode {
	if len(b.stack) != 0 {
		panic("parser: Finish with unfinished nodes")
	}
	if b.root == nil {
		panic("parser: Finish without a root node")
	}
	return b.root
}
