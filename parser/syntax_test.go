package parser

import "testing"

func TestTokenKindSyntaxBijection(t *testing.T) {
	for k := TokenKind(0); k < tokenKindCount; k++ {
		s := k.Syntax()
		if uint16(s) != uint16(k) {
			t.Errorf("kind %v maps to %d, want %d", k, uint16(s), uint16(k))
		}
		if !s.IsTerminal() {
			t.Errorf("kind %v not terminal as SyntaxKind", k)
		}
		if s.String() != k.String() {
			t.Errorf("name mismatch: %q vs %q", s.String(), k.String())
		}
	}
}

func TestCompositeKindsAboveTerminals(t *testing.T) {
	for _, k := range []SyntaxKind{KindUnary, KindFactor, KindTerm, KindComparison, KindEquality, KindRoot} {
		if k.IsTerminal() {
			t.Errorf("composite kind %v classified as terminal", k)
		}
		if k > KindRoot {
			t.Errorf("kind %v above Root sentinel", k)
		}
	}
}

func TestSyntaxKindFromRaw(t *testing.T) {
	if got := SyntaxKindFromRaw(uint16(TokenNumber)); got != TokenNumber.Syntax() {
		t.Errorf("decode = %v, want %v", got, TokenNumber.Syntax())
	}
	if got := SyntaxKindFromRaw(uint16(KindRoot)); got != KindRoot {
		t.Errorf("decode = %v, want %v", got, KindRoot)
	}
	mustPanic(t, "decode beyond Root", func() {
		SyntaxKindFromRaw(uint16(KindRoot) + 1)
	})
}

func TestSyntaxKindNames(t *testing.T) {
	tests := []struct {
		kind SyntaxKind
		name string
	}{
		{KindRoot, "Root"},
		{KindEquality, "Equality"},
		{TokenNumber.Syntax(), "Number"},
		{TokenErrorUnexpected.Syntax(), "ErrorUnexpected"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}
