package parser

// TokenKind classifies a lexed token. The declaration order is shared with
// SyntaxKind: a terminal's syntax kind has the same numeric value as its
// token kind.
type TokenKind int

const (
	// Single-character punctuation
	TokenLParen TokenKind = iota
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// One- or two-character operators
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Literals
	TokenIdentifier
	TokenStringLiteral
	TokenNumber

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFn
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	// Trivia
	TokenLineComment
	TokenBlockComment
	TokenWhitespace
	TokenNewline

	// Error tokens: malformed input is still tokenized, never rejected
	TokenErrorUnexpected
	TokenErrorUnterminatedString

	tokenKindCount
)

var tokenKindNames = map[TokenKind]string{
	TokenLParen:                  "LParen",
	TokenRParen:                  "RParen",
	TokenLBrace:                  "LBrace",
	TokenRBrace:                  "RBrace",
	TokenComma:                   "Comma",
	TokenDot:                     "Dot",
	TokenMinus:                   "Minus",
	TokenPlus:                    "Plus",
	TokenSemicolon:               "Semicolon",
	TokenSlash:                   "Slash",
	TokenStar:                    "Star",
	TokenBang:                    "Bang",
	TokenBangEqual:               "BangEqual",
	TokenEqual:                   "Equal",
	TokenEqualEqual:              "EqualEqual",
	TokenGreater:                 "Greater",
	TokenGreaterEqual:            "GreaterEqual",
	TokenLess:                    "Less",
	TokenLessEqual:               "LessEqual",
	TokenIdentifier:              "Identifier",
	TokenStringLiteral:           "StringLiteral",
	TokenNumber:                  "Number",
	TokenAnd:                     "And",
	TokenClass:                   "Class",
	TokenElse:                    "Else",
	TokenFalse:                   "False",
	TokenFn:                      "Fn",
	TokenFor:                     "For",
	TokenIf:                      "If",
	TokenNil:                     "Nil",
	TokenOr:                      "Or",
	TokenPrint:                   "Print",
	TokenReturn:                  "Return",
	TokenSuper:                   "Super",
	TokenThis:                    "This",
	TokenTrue:                    "True",
	TokenVar:                     "Var",
	TokenWhile:                   "While",
	TokenLineComment:             "LineComment",
	TokenBlockComment:            "BlockComment",
	TokenWhitespace:              "Whitespace",
	TokenNewline:                 "Newline",
	TokenErrorUnexpected:         "ErrorUnexpected",
	TokenErrorUnterminatedString: "ErrorUnterminatedString",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a classified, exact-text slice of the source. Concatenating the
// Text of every token produced by Lex reproduces the input byte for byte.
type Token struct {
	Kind TokenKind
	Text string
}

var keywords = map[string]TokenKind{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"fn":     TokenFn,
	"for":    TokenFor,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// LookupKeyword resolves an identifier-shaped string to its keyword kind,
// or TokenIdentifier when it is not a keyword. Matching is case-sensitive.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdentifier
}
