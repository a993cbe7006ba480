// File: doc.go
// Title: esta Parser Package Documentation
// Description: Implements the lexical analyzer and parser for esta
//              source text. Converts programs into Abstract Syntax Tree
//              representations with position carrying error reporting.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for esta source.

This package implements a recursive descent parser that converts esta
source text into Abstract Syntax Tree (AST) representations. It includes:

  • Lexical analyzer (tokenizer) for esta syntax
  • Recursive descent parser with one token of lookahead
  • Layered expression precedence with left associative folding
  • Desugaring of surface forms (for loops, initialized declarations,
    if without else, bare call statements) into the core statement set
  • Fail fast error reporting with source positions

Parsing is all or nothing: the first SyntaxError or LiteralError aborts
the parse and no partial tree is returned.
*/
package parser
