// File: lexer.go
// Title: Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of esta parsing.
//              Converts source text into a stream of tokens for the
//              parser. Handles all esta syntax elements and provides
//              detailed position information for error reporting.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/isgasho/esta/utils/stringx"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // counter, Point, do_work
	TokenString     // "string literal"
	TokenNumber     // 123
	TokenBoolean    // True, False
	TokenNil        // Nil

	// Keywords
	TokenVar    // var
	TokenWhile  // while
	TokenIf     // if
	TokenElse   // else
	TokenFor    // for
	TokenFun    // fun
	TokenStruct // struct
	TokenReturn // return
	TokenAnd    // and
	TokenOr     // or
	TokenNot    // not

	// Operators
	TokenAssign     // =
	TokenEqualEqual // ==
	TokenBangEqual  // !=
	TokenLess       // <
	TokenLessEq     // <=
	TokenGreater    // >
	TokenGreaterEq  // >=
	TokenPlus       // +
	TokenMinus      // -
	TokenStar       // *
	TokenSlash      // /
	TokenPercent    // %
	TokenDot        // .

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenComma        // ,
	TokenSemicolon    // ;
	TokenColon        // :
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text, quotes already stripped for strings
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenBoolean:
		return "BOOLEAN"
	case TokenNil:
		return "NIL"
	case TokenVar:
		return "VAR"
	case TokenWhile:
		return "WHILE"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenFor:
		return "FOR"
	case TokenFun:
		return "FUN"
	case TokenStruct:
		return "STRUCT"
	case TokenReturn:
		return "RETURN"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenAssign:
		return "ASSIGN"
	case TokenEqualEqual:
		return "EQUAL_EQUAL"
	case TokenBangEqual:
		return "BANG_EQUAL"
	case TokenLess:
		return "LESS"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreater:
		return "GREATER"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenDot:
		return "DOT"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenComma:
		return "COMMA"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenColon:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of esta source text
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Line comments run to the end of the line and produce no token
	for l.ch == '/' && l.peekChar() == '/' {
		l.skipLineComment()
		l.skipWhitespace()
	}

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenEqualEqual, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenAssign, l.ch, pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenBangEqual, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenLessEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenLess, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenGreaterEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenGreater, l.ch, pos, line, column)
		}
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '*':
		tok = newToken(TokenStar, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, line, column)
	case '%':
		tok = newToken(TokenPercent, l.ch, pos, line, column)
	case '.':
		tok = newToken(TokenDot, l.ch, pos, line, column)
	case ':':
		tok = newToken(TokenColon, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case '{':
		tok = newToken(TokenLeftBrace, l.ch, pos, line, column)
	case '}':
		tok = newToken(TokenRightBrace, l.ch, pos, line, column)
	case '[':
		tok = newToken(TokenLeftBracket, l.ch, pos, line, column)
	case ']':
		tok = newToken(TokenRightBracket, l.ch, pos, line, column)
	case ',':
		tok = newToken(TokenComma, l.ch, pos, line, column)
	case ';':
		tok = newToken(TokenSemicolon, l.ch, pos, line, column)
	case '"':
		value, terminated := l.readString()
		tok.Value = value
		tok.Position = pos
		tok.Line = line
		tok.Column = column
		if terminated {
			tok.Type = TokenString
		} else {
			tok.Type = TokenIllegal
		}
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	default:
		if isAlpha(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Value = l.readIdentifier()
			tok.Type = lookupIdent(tok.Value)
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Type = TokenNumber
			tok.Value = l.readNumber()
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			return tok // Early return to avoid readChar()
		} else {
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("illegal character %q at line %d, column %d (position %d)",
				tok.Value, tok.Line, tok.Column, tok.Position)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters, then letters, digits, or
// underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer literal. esta numbers are plain decimal
// digit runs; a following dot is a member access, not a decimal point.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a double-quoted string literal up to the closing
// quote. The returned value excludes both quotes. Escape sequences are
// not interpreted: a backslash is an ordinary character and cannot
// escape the closing quote. Returns false when the input ends before
// the string is closed.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1 // Skip opening quote

	for {
		l.readChar()
		if l.ch == '"' {
			return l.input[start:l.position], true
		}
		if l.ch == 0 {
			return l.input[start:l.position], false
		}
	}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment skips a // comment up to the end of the line
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isAlpha checks if the character can start a name
func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isLetter checks if the character can continue a name. Underscores and
// multi-byte runes are word characters but cannot open an identifier.
func isLetter(ch byte) bool {
	return isAlpha(ch) || ch == '_' || ch > 127
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Keywords map for identifier lookup. esta keywords are case sensitive:
// "True" is a boolean literal, "true" is a plain identifier.
var keywords = map[string]TokenType{
	"var":    TokenVar,
	"while":  TokenWhile,
	"if":     TokenIf,
	"else":   TokenElse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"struct": TokenStruct,
	"return": TokenReturn,
	"and":    TokenAnd,
	"or":     TokenOr,
	"not":    TokenNot,
	"True":   TokenBoolean,
	"False":  TokenBoolean,
	"Nil":    TokenNil,
}

// lookupIdent determines if an identifier is a keyword or regular identifier
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// IsValidNumber checks if a string is a valid esta integer literal
func IsValidNumber(s string) bool {
	if stringx.IsBlank(s) {
		return false
	}

	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsValidIdentifier checks if a string is a valid esta identifier
func IsValidIdentifier(s string) bool {
	if stringx.IsBlank(s) {
		return false
	}

	// Must start with an ASCII letter, like the lexer's leading byte
	if !isAlpha(s[0]) {
		return false
	}

	// Rest can be letters, digits, or underscores
	for _, r := range s[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

// IsKeyword checks if a string is an esta keyword
func IsKeyword(s string) bool {
	_, isKeyword := keywords[s]
	return isKeyword
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
