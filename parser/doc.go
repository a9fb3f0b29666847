// Package parser provides the front end for the lx expression language: a
// total, lossless tokenizer and an error-tolerant recursive-descent parser
// producing an immutable concrete syntax tree.
//
// # Overview
//
//	┌─────────────┐     ┌─────────────┐     ┌──────────────┐
//	│   Input     │────▶│    Lex      │────▶│    Parse     │
//	│  (string)   │     │  ([]Token)  │     │ (green tree) │
//	└─────────────┘     └─────────────┘     └──────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌──────────────┐
//	                                        │  SyntaxNode  │
//	                                        │  (red view)  │
//	                                        └──────────────┘
//
// Lex classifies every byte of input, including malformed input, into a
// token; concatenating the token texts reproduces the source exactly. Parse
// consumes the tokens left to right and emits builder events in lockstep,
// so the same round-trip guarantee holds for the tree's leaves. Syntax
// errors are collected into the Result, never raised; the tree is always
// complete and navigable.
//
// # Green and red trees
//
// The green tree (GreenNode/GreenToken, assembled by Builder) is immutable
// and structurally shared: it stores kinds and exact text, but no offsets or
// parent pointers. A SyntaxNode is a red view derived on demand from a green
// root; it adds parent links and absolute byte offsets without ever touching
// the green tree.
//
// # Error taxonomy
//
// Lexical errors (ErrorUnexpected, ErrorUnterminatedString) are ordinary
// tokens. Syntactic errors ("Unexpected token", "Unexpected EOF",
// "Expected EOF") are messages in Result.Errors paired with ErrorUnexpected
// nodes in the tree. Programming errors (unbalanced builder use, decoding a
// raw kind beyond KindRoot) panic: they indicate a bug here, not bad input.
//
// # Thread safety
//
// Lex and Parse are pure functions. A finished green tree and any views over
// it are safe to share read-only across goroutines; a Builder is not.
package parser
