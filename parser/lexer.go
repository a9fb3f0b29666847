package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lex converts source text into a complete, ordered token stream. It is total:
// every byte of input ends up in exactly one token, and unrecognized input
// becomes error-kind tokens instead of failing. Concatenating the Text of all
// returned tokens reproduces the input exactly.
func Lex(input string) []Token {
	var tokens []Token
	rest := input
	for len(rest) > 0 {
		tok, ok := validToken(rest)
		if !ok {
			tok = invalidToken(rest)
		}
		rest = rest[len(tok.Text):]
		tokens = append(tokens, tok)
	}
	return tokens
}

// validToken attempts a greedy longest match at the start of input.
func validToken(input string) (Token, bool) {
	if len(input) == 0 {
		return Token{}, false
	}

	r, size := utf8.DecodeRuneInString(input)

	single := func(kind TokenKind) (Token, bool) {
		return Token{Kind: kind, Text: input[:size]}, true
	}
	// Two-character operator when '=' follows, one-character fallback.
	withEqual := func(two, one TokenKind) (Token, bool) {
		if len(input) > size && input[size] == '=' {
			return Token{Kind: two, Text: input[:size+1]}, true
		}
		return single(one)
	}

	switch r {
	case '(':
		return single(TokenLParen)
	case ')':
		return single(TokenRParen)
	case '{':
		return single(TokenLBrace)
	case '}':
		return single(TokenRBrace)
	case ',':
		return single(TokenComma)
	case '.':
		return single(TokenDot)
	case '-':
		return single(TokenMinus)
	case '+':
		return single(TokenPlus)
	case ';':
		return single(TokenSemicolon)
	case '*':
		return single(TokenStar)
	case '!':
		return withEqual(TokenBangEqual, TokenBang)
	case '=':
		return withEqual(TokenEqualEqual, TokenEqual)
	case '<':
		return withEqual(TokenLessEqual, TokenLess)
	case '>':
		return withEqual(TokenGreaterEqual, TokenGreater)
	case '/':
		if len(input) > 1 && input[1] == '/' {
			return scanLineComment(input), true
		}
		if len(input) > 1 && input[1] == '*' {
			return scanBlockComment(input), true
		}
		return single(TokenSlash)
	case ' ', '\r', '\t':
		return scanWhitespace(input), true
	case '\n':
		// A bare newline is its own token; whitespace runs never cross it.
		return single(TokenNewline)
	case '"':
		return scanString(input), true
	}

	if unicode.IsDigit(r) {
		return scanNumber(input, size), true
	}
	if unicode.IsLetter(r) || r == '_' {
		return scanIdentOrKeyword(input, size), true
	}

	return Token{}, false
}

// invalidToken consumes the run of input for which no valid token can be
// recognized. At least one code point is always consumed, so the lexer makes
// progress even on pure garbage, and an entire garbage run becomes a single
// error token.
func invalidToken(input string) Token {
	n := 0
	for n < len(input) {
		_, size := utf8.DecodeRuneInString(input[n:])
		n += size
		if _, ok := validToken(input[n:]); ok {
			break
		}
	}
	return Token{Kind: TokenErrorUnexpected, Text: input[:n]}
}

func scanLineComment(input string) Token {
	end := strings.IndexByte(input, '\n')
	if end < 0 {
		end = len(input)
	}
	return Token{Kind: TokenLineComment, Text: input[:end]}
}

func scanBlockComment(input string) Token {
	// TODO: an unterminated block comment reaches end of input as a plain
	// BlockComment token, while an unterminated string gets its own error
	// kind; decide whether block comments need one too.
	idx := strings.Index(input[2:], "*/")
	if idx < 0 {
		return Token{Kind: TokenBlockComment, Text: input}
	}
	return Token{Kind: TokenBlockComment, Text: input[:2+idx+2]}
}

func scanWhitespace(input string) Token {
	i := 1
	for i < len(input) && (input[i] == ' ' || input[i] == '\r' || input[i] == '\t') {
		i++
	}
	return Token{Kind: TokenWhitespace, Text: input[:i]}
}

func scanString(input string) Token {
	i := 1
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		i += size
		if r == '"' {
			return Token{Kind: TokenStringLiteral, Text: input[:i]}
		}
	}
	return Token{Kind: TokenErrorUnterminatedString, Text: input}
}

func scanNumber(input string, size int) Token {
	i := size + digitRun(input[size:])

	// A fractional part only when the dot is followed by another digit; a
	// trailing dot lexes separately on the next iteration.
	if i < len(input) && input[i] == '.' {
		r, _ := utf8.DecodeRuneInString(input[i+1:])
		if unicode.IsDigit(r) {
			i++
			i += digitRun(input[i:])
		}
	}
	return Token{Kind: TokenNumber, Text: input[:i]}
}

func digitRun(input string) int {
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !unicode.IsDigit(r) && r != '_' {
			break
		}
		i += size
	}
	return i
}

func scanIdentOrKeyword(input string, size int) Token {
	i := size
	for i < len(input) {
		r, sz := utf8.DecodeRuneInString(input[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		i += sz
	}
	text := input[:i]
	return Token{Kind: LookupKeyword(text), Text: text}
}
