// File: errors.go
// Title: Parser Error Types
// Description: Defines the error types reported by the esta parser.
//              Parsing is fail fast: the first error aborts the parse
//              and carries the offending token together with the set
//              of token types that would have been valid in its place.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial parser error types

package parser

import (
	"fmt"
	"strings"
)

// SyntaxError reports the first point at which the token stream stopped
// matching the grammar. Found is the offending token, Expected lists
// the token types that would have been accepted in its place.
type SyntaxError struct {
	Found    Token       // Offending token
	Expected []TokenType // Token types that were acceptable here
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Found.Line, e.Found.Column, formatExpected(e.Expected), formatFound(e.Found))
}

// LiteralError reports a literal whose token is well formed but whose
// value the language cannot represent, such as an integer above the
// 64 bit signed range.
type LiteralError struct {
	Token  Token  // Offending literal token
	Reason string // Description of the failed conversion
	Err    error  // Underlying conversion error, may be nil
}

// Error implements the error interface
func (e *LiteralError) Error() string {
	return fmt.Sprintf("literal error at line %d, column %d: %s",
		e.Token.Line, e.Token.Column, e.Reason)
}

// Unwrap returns the underlying conversion error
func (e *LiteralError) Unwrap() error {
	return e.Err
}

// formatExpected renders an expected token type set for an error
// message, joining the final alternative with "or"
func formatExpected(expected []TokenType) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0].String()
	}

	names := make([]string, len(expected))
	for i, tt := range expected {
		names[i] = tt.String()
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// formatFound renders the offending token for an error message
func formatFound(found Token) string {
	if found.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", found.Value)
}
