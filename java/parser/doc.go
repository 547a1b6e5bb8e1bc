// Package parser turns Java source text into the position-annotated syntax
// tree defined in package ast.
//
// # Overview
//
// Parsing happens in two passes. The whole input is tokenized first; the
// parser then runs recursive descent over the token slice with unbounded
// lookahead. Ambiguous prefixes (casts, generic method references, local
// variable declarations) are resolved by speculative parsing: the cursor is
// saved, the alternative is tried, and on failure the cursor is restored.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  LexError   │     │ SyntaxError │
//	                    └─────────────┘     └─────────────┘
//
// Tokens are immutable. When a type argument list closes on a >> or >>>
// token, the parser consumes one '>' and remembers how much of the token
// is left; the remainder is presented as the current token.
//
// # Positions
//
// Lines and columns are 1-based. Columns count characters, not bytes. CR,
// LF and CRLF each end one line. Every node carries the position of its
// first character and the position of its last character, both inclusive.
//
// # Errors
//
// Parsing stops at the first error. There is no recovery and no partial
// tree: an entry point returns either a complete node or an error.
//
//	*LexError    malformed literal, unterminated comment, stray character
//	*SyntaxError unexpected token, with the expected kinds when known
//
// IsIncomplete reports whether a SyntaxError happened at end of input,
// which a REPL uses to ask for another line.
//
// # Entry Points
//
//	ParseFile(src, opts...)     a compilation unit
//	ParseExpr(src, opts...)     a single expression, nothing after it
//
// For finer-grained productions create a Parser with New and call one of
// its Parse methods. Each leaves the parser after the production, so they
// can be chained:
//
//	p, err := parser.New([]byte("int x = 1; x++;"))
//	decl, err := p.ParseLocalVariableDeclarationStatement()
//	stmt, err := p.ParseStatement()
//
// # Thread Safety
//
// A Parser is not safe for concurrent use. Parsers share no state, so
// separate files can be parsed concurrently with separate instances.
package parser
