package parser

// Result is the outcome of a parse: the green root plus the ordered syntax
// error messages. Both are fixed once Parse returns.
type Result struct {
	root   *GreenNode
	errors []string
}

// Root returns the immutable tree root.
func (r Result) Root() *GreenNode { return r.root }

// Errors returns the collected error messages in source order.
func (r Result) Errors() []string { return r.errors }

// Syntax derives a fresh navigable view over the tree.
func (r Result) Syntax() *SyntaxNode { return NewSyntaxNode(r.root) }

// Parse consumes the token stream strictly left to right and produces one
// lossless tree: every token, trivia and error tokens included, ends up as a
// leaf. Parsing never aborts; malformed regions become ErrorUnexpected nodes
// and messages in the error list.
//
// Grammar (binary operators left-associative):
//
//	expression → equality
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
func Parse(tokens []Token) Result {
	p := &treeParser{tokens: tokens, builder: &Builder{}}
	return p.parse()
}

type treeParser struct {
	tokens  []Token
	pos     int
	builder *Builder
	errors  []string
}

func (p *treeParser) current() (TokenKind, bool) {
	if p.pos >= len(p.tokens) {
		return 0, false
	}
	return p.tokens[p.pos].Kind, true
}

// bump advances one token, adding it to the open node on top of the builder
// stack. The cursor only ever moves forward.
func (p *treeParser) bump() {
	tok := p.tokens[p.pos]
	p.pos++
	p.builder.Token(tok.Kind.Syntax(), tok.Text)
}

// skipWhitespace attaches pending whitespace tokens to the current node.
func (p *treeParser) skipWhitespace() {
	for {
		k, ok := p.current()
		if !ok || k != TokenWhitespace {
			return
		}
		p.bump()
	}
}

// peekSignificant looks past whitespace without consuming anything, so a
// grammar level can decide whether an operator follows before committing the
// trivia to its own node.
func (p *treeParser) peekSignificant() (TokenKind, bool) {
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Kind != TokenWhitespace {
			return p.tokens[i].Kind, true
		}
	}
	return 0, false
}

func (p *treeParser) at(kinds ...TokenKind) bool {
	k, ok := p.peekSignificant()
	if !ok {
		return false
	}
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// unexpected wraps the current significant token in a single-child error node
// and records the message. The surrounding expression unwinds normally.
func (p *treeParser) unexpected() {
	p.skipWhitespace()
	p.builder.StartNode(TokenErrorUnexpected.Syntax())
	p.errors = append(p.errors, "Unexpected token")
	p.bump()
	p.builder.FinishNode()
}

// unexpectedEOF records the message without consuming anything; every driving
// loop tests for remaining tokens before recursing, so this cannot loop.
func (p *treeParser) unexpectedEOF() {
	p.errors = append(p.errors, "Unexpected EOF")
}

func (p *treeParser) expression() {
	p.skipWhitespace()
	p.equality()
}

func (p *treeParser) equality() {
	p.builder.StartNode(KindEquality)
	p.comparison()
	for p.at(TokenBangEqual, TokenEqualEqual) {
		p.skipWhitespace()
		p.bump()
		p.skipWhitespace()
		p.comparison()
	}
	p.builder.FinishNode()
}

func (p *treeParser) comparison() {
	p.builder.StartNode(KindComparison)
	p.term()
	for p.at(TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual) {
		p.skipWhitespace()
		p.bump()
		p.skipWhitespace()
		p.term()
	}
	p.builder.FinishNode()
}

func (p *treeParser) term() {
	p.builder.StartNode(KindTerm)
	p.factor()
	for p.at(TokenMinus, TokenPlus) {
		p.skipWhitespace()
		p.bump()
		p.skipWhitespace()
		p.factor()
	}
	p.builder.FinishNode()
}

func (p *treeParser) factor() {
	p.builder.StartNode(KindFactor)
	p.unary()
	for p.at(TokenSlash, TokenStar) {
		p.skipWhitespace()
		p.bump()
		p.skipWhitespace()
		p.unary()
	}
	p.builder.FinishNode()
}

// unary wraps a node only when a prefix operator is actually present;
// otherwise it falls through to primary without wrapping.
func (p *treeParser) unary() {
	p.skipWhitespace()
	if p.at(TokenBang, TokenMinus) {
		p.builder.StartNode(KindUnary)
		p.bump()
		p.unary()
		p.builder.FinishNode()
		return
	}
	p.primary()
}

func (p *treeParser) primary() {
	p.skipWhitespace()
	k, ok := p.current()
	if !ok {
		p.unexpectedEOF()
		return
	}
	switch k {
	case TokenFalse, TokenTrue, TokenNil, TokenNumber, TokenStringLiteral:
		p.bump()
	case TokenLParen:
		p.bump()
		p.expression()
		if p.at(TokenRParen) {
			p.skipWhitespace()
			p.bump()
		} else if _, ok := p.peekSignificant(); ok {
			p.unexpected()
		} else {
			p.unexpectedEOF()
		}
	default:
		p.unexpected()
	}
}

func (p *treeParser) parse() Result {
	p.builder.StartNode(KindRoot)
	p.expression()

	// Trailing whitespace and newlines are legitimate terminators.
	for {
		k, ok := p.current()
		if !ok || (k != TokenWhitespace && k != TokenNewline) {
			break
		}
		p.bump()
	}

	// Anything left over is wrapped in one error node, so the parser always
	// consumes its entire input.
	if _, ok := p.current(); ok {
		p.builder.StartNode(TokenErrorUnexpected.Syntax())
		p.errors = append(p.errors, "Expected EOF")
		for {
			if _, ok := p.current(); !ok {
				break
			}
			p.bump()
		}
		p.builder.FinishNode()
	}

	p.builder.FinishNode()
	return Result{root: p.builder.Finish(), errors: p.errors}
}
