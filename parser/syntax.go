package parser

import "fmt"

// SyntaxKind tags both tree leaves and composite nodes. Terminal kinds occupy
// the low end of the namespace with the same numeric values as their
// TokenKind; composite kinds produced by the parser follow.
type SyntaxKind uint16

const (
	KindUnary SyntaxKind = SyntaxKind(tokenKindCount) + iota
	KindFactor
	KindTerm
	KindComparison
	KindEquality

	// KindRoot must stay the maximum value; raw decoding is bounds-checked
	// against it.
	KindRoot
)

var compositeKindNames = map[SyntaxKind]string{
	KindUnary:      "Unary",
	KindFactor:     "Factor",
	KindTerm:       "Term",
	KindComparison: "Comparison",
	KindEquality:   "Equality",
	KindRoot:       "Root",
}

// Syntax converts a token kind to its syntax kind. The conversion is
// bijective over terminals: both enumerations share one numeric namespace.
func (k TokenKind) Syntax() SyntaxKind {
	return SyntaxKind(k)
}

// SyntaxKindFromRaw decodes a raw integer back into a SyntaxKind. A value
// beyond KindRoot indicates a bug in the caller, not bad input, and panics.
func SyntaxKindFromRaw(raw uint16) SyntaxKind {
	if raw > uint16(KindRoot) {
		panic(fmt.Sprintf("parser: syntax kind %d out of range (max %d)", raw, uint16(KindRoot)))
	}
	return SyntaxKind(raw)
}

// IsTerminal reports whether the kind names a token rather than a composite
// node.
func (k SyntaxKind) IsTerminal() bool {
	return k < SyntaxKind(tokenKindCount)
}

func (k SyntaxKind) String() string {
	if k.IsTerminal() {
		return TokenKind(k).String()
	}
	if name, ok := compositeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}
