package parser

import (
	"strings"
	"testing"
)

func TestLexKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", nil},
		{"(", []TokenKind{TokenLParen}},
		{")", []TokenKind{TokenRParen}},
		{"{", []TokenKind{TokenLBrace}},
		{"}", []TokenKind{TokenRBrace}},
		{",", []TokenKind{TokenComma}},
		{".", []TokenKind{TokenDot}},
		{"-", []TokenKind{TokenMinus}},
		{"+", []TokenKind{TokenPlus}},
		{";", []TokenKind{TokenSemicolon}},
		{"*", []TokenKind{TokenStar}},
		{"/", []TokenKind{TokenSlash}},
		{"!", []TokenKind{TokenBang}},
		{"!=", []TokenKind{TokenBangEqual}},
		{"=", []TokenKind{TokenEqual}},
		{"==", []TokenKind{TokenEqualEqual}},
		{"<", []TokenKind{TokenLess}},
		{"<=", []TokenKind{TokenLessEqual}},
		{">", []TokenKind{TokenGreater}},
		{">=", []TokenKind{TokenGreaterEqual}},
		{"=!", []TokenKind{TokenEqual, TokenBang}},
		{"===", []TokenKind{TokenEqualEqual, TokenEqual}},
		{"123", []TokenKind{TokenNumber}},
		{"1_000", []TokenKind{TokenNumber}},
		{"3.14", []TokenKind{TokenNumber}},
		{"1_0.5_5", []TokenKind{TokenNumber}},
		{"1.", []TokenKind{TokenNumber, TokenDot}},
		{"1..2", []TokenKind{TokenNumber, TokenDot, TokenDot, TokenNumber}},
		{`"hello"`, []TokenKind{TokenStringLiteral}},
		{`""`, []TokenKind{TokenStringLiteral}},
		{`"abc`, []TokenKind{TokenErrorUnterminatedString}},
		{"foo", []TokenKind{TokenIdentifier}},
		{"_x1", []TokenKind{TokenIdentifier}},
		{"fnx", []TokenKind{TokenIdentifier}},
		{"Fn", []TokenKind{TokenIdentifier}},
		{"// comment", []TokenKind{TokenLineComment}},
		{"// comment\n", []TokenKind{TokenLineComment, TokenNewline}},
		{"/* block */", []TokenKind{TokenBlockComment}},
		{"/* a\nb */+", []TokenKind{TokenBlockComment, TokenPlus}},
		{"/* open", []TokenKind{TokenBlockComment}},
		{"  \t\r", []TokenKind{TokenWhitespace}},
		{"\n", []TokenKind{TokenNewline}},
		{" \n ", []TokenKind{TokenWhitespace, TokenNewline, TokenWhitespace}},
		{"?", []TokenKind{TokenErrorUnexpected}},
		{"??#", []TokenKind{TokenErrorUnexpected}},
		{"?1", []TokenKind{TokenErrorUnexpected, TokenNumber}},
		{"1 ? 2", []TokenKind{TokenNumber, TokenWhitespace, TokenErrorUnexpected, TokenWhitespace, TokenNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Lex(tt.input)
			var got []TokenKind
			for _, tok := range tokens {
				got = append(got, tok.Kind)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"and", TokenAnd},
		{"class", TokenClass},
		{"else", TokenElse},
		{"false", TokenFalse},
		{"fn", TokenFn},
		{"for", TokenFor},
		{"if", TokenIf},
		{"nil", TokenNil},
		{"or", TokenOr},
		{"print", TokenPrint},
		{"return", TokenReturn},
		{"super", TokenSuper},
		{"this", TokenThis},
		{"true", TokenTrue},
		{"var", TokenVar},
		{"while", TokenWhile},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Lex(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1", len(tokens))
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].Text != tt.input {
				t.Errorf("Text = %q, want %q", tokens[0].Text, tt.input)
			}
		})
	}
}

func TestLexTexts(t *testing.T) {
	tokens := Lex("1 + 2")
	want := []Token{
		{TokenNumber, "1"},
		{TokenWhitespace, " "},
		{TokenPlus, "+"},
		{TokenWhitespace, " "},
		{TokenNumber, "2"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %v %q, want %v %q", i, tokens[i].Kind, tokens[i].Text, want[i].Kind, want[i].Text)
		}
	}
}

func TestLexRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"1 + 2",
		"(1 + 2) * 3 == 9",
		"var x = 1; // trailing\n",
		"\"unterminated",
		"?? garbage ?? 1 ??",
		"/* never closed",
		"\x00\x01\x02",
		"héllo wörld ≠ 42",
		"  \t\r\n\n  ",
		"1._2.3...",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var sb strings.Builder
			for _, tok := range Lex(input) {
				sb.WriteString(tok.Text)
			}
			if sb.String() != input {
				t.Errorf("round trip = %q, want %q", sb.String(), input)
			}
		})
	}
}

func TestLexIdempotentTrivia(t *testing.T) {
	inputs := []string{
		"1 + 2 // done\n",
		"? ? ?",
		"\"a\" \"b",
		"/* x */ 1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := Lex(input)
			var sb strings.Builder
			for _, tok := range first {
				sb.WriteString(tok.Text)
			}
			second := Lex(sb.String())
			if len(first) != len(second) {
				t.Fatalf("relex produced %d tokens, want %d", len(second), len(first))
			}
			for i := range first {
				if first[i] != second[i] {
					t.Errorf("token %d: relex got %v %q, want %v %q", i, second[i].Kind, second[i].Text, first[i].Kind, first[i].Text)
				}
			}
		})
	}
}

func TestLexInvalidRunProgress(t *testing.T) {
	// A garbage run becomes one error token, and at least one code point is
	// always consumed.
	tests := []struct {
		input string
		text  string
	}{
		{"?", "?"},
		{"?#?", "?#?"},
		{"#1", "#"},
		{"€", "€"},
		{"€€+", "€€"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Lex(tt.input)
			if len(tokens) == 0 {
				t.Fatal("no tokens produced")
			}
			if tokens[0].Kind != TokenErrorUnexpected {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, TokenErrorUnexpected)
			}
			if tokens[0].Text != tt.text {
				t.Errorf("Text = %q, want %q", tokens[0].Text, tt.text)
			}
		})
	}
}

func TestLexUnterminatedString(t *testing.T) {
	tokens := Lex("\"abc")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if tokens[0].Kind != TokenErrorUnterminatedString {
		t.Errorf("Kind = %v, want %v", tokens[0].Kind, TokenErrorUnterminatedString)
	}
	if tokens[0].Text != "\"abc" {
		t.Errorf("Text = %q, want %q", tokens[0].Text, "\"abc")
	}
}
