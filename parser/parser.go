// File: parser.go
// Title: Recursive Descent Parser
// Description: Implements the esta grammar as a recursive descent
//              parser with one token of lookahead. Expressions are
//              parsed through an explicit precedence ladder that folds
//              binary operators left associatively. Surface constructs
//              without a core AST form (for loops, initialized
//              declarations, if without else, bare call statements)
//              are lowered into the core statement set while parsing.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	"github.com/isgasho/esta/ast"
	estalog "github.com/isgasho/esta/core/log"
	"github.com/isgasho/esta/utils/stringx"
)

// Parser implements recursive descent parsing for esta source. A
// Parser may be reused across inputs but is not safe for concurrent
// use: each Parse call owns the token cursor for its duration.
type Parser struct {
	lexer    *Lexer
	current  Token // Current token (one token of lookahead)
	previous Token // Previous token
	logger   *estalog.Logger
	options  Options
}

// Options configures parser behavior
type Options struct {
	Logger        *estalog.Logger
	MaxSourceSize int // Maximum accepted source length in bytes
}

// DefaultMaxSourceSize is the source length limit applied when Options
// leaves MaxSourceSize unset.
const DefaultMaxSourceSize = 1 << 20

// New creates a new esta parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = estalog.GetDefault()
	}
	if opts.MaxSourceSize == 0 {
		opts.MaxSourceSize = DefaultMaxSourceSize
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}, nil
}

// Parse parses esta source text into a program AST. Parsing is all or
// nothing: the first error aborts the parse and no partial tree is
// returned.
func (p *Parser) Parse(input string) (*ast.Program, error) {
	// Validate input length
	if len(input) > p.options.MaxSourceSize {
		return nil, fmt.Errorf("source exceeds maximum size: %d > %d",
			len(input), p.options.MaxSourceSize)
	}

	// Initialize lexer
	p.lexer = NewLexer(input)
	p.advance() // Load first token

	p.logger.Debug("Starting parse", estalog.Fields{
		"length":  len(input),
		"preview": stringx.Truncate(input, 64, "..."),
	})

	program := &ast.Program{Pos: p.currentPosition()}
	for p.current.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Warn("Parsing failed", estalog.Fields{
				"error": err.Error(),
			})
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}

	p.logger.Debug("Parsing completed successfully", estalog.Fields{
		"statements": len(program.Stmts),
	})

	return program, nil
}

// ParseExpression parses a single expression and requires the input to
// contain nothing else. Used for evaluating bare expressions, for
// example from a REPL prompt.
func (p *Parser) ParseExpression(input string) (ast.Expr, error) {
	if len(input) > p.options.MaxSourceSize {
		return nil, fmt.Errorf("source exceeds maximum size: %d > %d",
			len(input), p.options.MaxSourceSize)
	}

	p.lexer = NewLexer(input)
	p.advance() // Load first token

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, p.syntaxError(TokenEOF)
	}

	return expr, nil
}

// ParseInput is a convenience function that parses source text with a
// default configured parser
func ParseInput(input string) (*ast.Program, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// Statement parsing

// parseStatement parses a single statement, applying the desugaring
// rules that lower surface forms into the core statement set
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.current.Type {
	case TokenVar:
		return p.parseVarStatement()
	case TokenWhile:
		return p.parseWhileStatement()
	case TokenIf:
		return p.parseIfStatement()
	case TokenFor:
		return p.parseForStatement()
	case TokenFun:
		return p.parseFunDeclaration()
	case TokenStruct:
		return p.parseStructDeclaration()
	case TokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarStatement parses a variable declaration. A declaration with
// an initializer lowers into a flat group holding the declaration and
// a first assignment, so later passes see initialization as a plain
// assignment.
func (p *Parser) parseVarStatement() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'var'

	ident, err := p.parseTypedIdentifier()
	if err != nil {
		return nil, err
	}

	switch p.current.Type {
	case TokenSemicolon:
		p.advance() // consume ';'
		return &ast.DeclarationStmt{Ident: ident, Pos: pos}, nil

	case TokenAssign:
		p.advance() // consume '='

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}

		decl := &ast.DeclarationStmt{Ident: ident, Pos: pos}
		assign := &ast.AssignmentStmt{
			Target: &ast.IdentifierExpr{Ident: ident, Pos: ident.Pos},
			Value:  value,
			Pos:    pos,
		}
		return &ast.BlockStmt{Stmts: []ast.Stmt{decl, assign}, IsScope: false, Pos: pos}, nil

	default:
		return nil, p.syntaxError(TokenAssign, TokenSemicolon)
	}
}

// parseWhileStatement parses a while loop
func (p *Parser) parseWhileStatement() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'while'

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Cond: cond, Body: body, Pos: pos}, nil
}

// parseIfStatement parses an if statement. The else branch is always
// materialized: when no else clause is written the statement carries
// an empty scoping block, so consumers never see a missing branch.
func (p *Parser) parseIfStatement() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'if'

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	elseBlock := &ast.BlockStmt{IsScope: true, Pos: p.currentPosition()}
	if p.current.Type == TokenElse {
		p.advance() // consume 'else'

		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock, Pos: pos}, nil
}

// parseForStatement parses a for loop and lowers it into the core
// while form: the step assignment is folded into the front of the
// loop body, and when an initializer is present it wraps the while in
// a flat non scoping group that keeps the loop variable visible to
// the condition.
func (p *Parser) parseForStatement() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'for'

	// Optional initializer slot, always terminated by ';'. The
	// initializer is a declaration or an expression statement, both
	// of which consume their own terminator.
	var init ast.Stmt
	var err error
	switch p.current.Type {
	case TokenSemicolon:
		p.advance() // consume ';'
	case TokenVar:
		init, err = p.parseVarStatement()
		if err != nil {
			return nil, err
		}
	default:
		init, err = p.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	// Optional step slot, always terminated by ';'
	var step ast.Stmt
	switch p.current.Type {
	case TokenSemicolon:
		p.advance() // consume ';'
	case TokenLeftBrace:
		return nil, p.syntaxError(TokenSemicolon)
	default:
		step, err = p.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	whileBody := make([]ast.Stmt, 0, len(body.Stmts)+1)
	if step != nil {
		whileBody = append(whileBody, step)
	}
	whileBody = append(whileBody, body.Stmts...)

	loop := &ast.WhileStmt{
		Cond: cond,
		Body: &ast.BlockStmt{Stmts: whileBody, IsScope: true, Pos: body.Pos},
		Pos:  pos,
	}

	if init == nil {
		return loop, nil
	}
	return &ast.BlockStmt{Stmts: []ast.Stmt{init, loop}, IsScope: false, Pos: pos}, nil
}

// parseFunDeclaration parses a function declaration. A return type is
// written as a type annotation on the function name, as in
// "fun half: int(n: int) { ... }"; parameters are a comma separated
// list of optionally typed identifiers.
func (p *Parser) parseFunDeclaration() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'fun'

	name, err := p.parseTypedIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}

	// Unlike list literals, a parameter list has no trailing comma
	var params []ast.Identifier
	if p.current.Type != TokenRightParen {
		for {
			param, err := p.parseTypedIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			if p.current.Type != TokenComma {
				break
			}
			p.advance() // consume ','
		}
	}
	if p.current.Type != TokenRightParen {
		return nil, p.syntaxError(TokenComma, TokenRightParen)
	}
	p.advance() // consume ')'

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunDeclStmt{Name: name, Params: params, Body: body, Pos: pos}, nil
}

// parseStructDeclaration parses a struct declaration: a type name and
// a braced, comma separated field list. The empty field list and a
// trailing comma before the closing brace are both accepted.
func (p *Parser) parseStructDeclaration() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'struct'

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLeftBrace); err != nil {
		return nil, err
	}

	var fields []ast.Identifier
	for p.current.Type != TokenRightBrace {
		field, err := p.parseTypedIdentifier()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		if p.current.Type == TokenComma {
			p.advance() // consume ','
			continue
		}
		if p.current.Type != TokenRightBrace {
			return nil, p.syntaxError(TokenComma, TokenRightBrace)
		}
	}
	p.advance() // consume '}'

	return &ast.StructStmt{Name: name.Value, Fields: fields, Pos: pos}, nil
}

// parseReturnStatement parses a return with an optional value
func (p *Parser) parseReturnStatement() (ast.Stmt, error) {
	pos := p.currentPosition()
	p.advance() // consume 'return'

	if p.current.Type == TokenSemicolon {
		p.advance() // consume ';'
		return &ast.ReturnStmt{Pos: pos}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{Value: value, Pos: pos}, nil
}

// parseExpressionStatement parses the statements that start with an
// expression: an assignment "target = value;" or a bare call such as
// "print(x);". The assignment target is taken verbatim, whether it is
// assignable is checked by the evaluator. A bare call lowers into an
// assignment to the Nil literal, the discard target; bare expressions
// that are not calls do not form a statement.
func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	pos := p.currentPosition()

	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenAssign {
		p.advance() // consume '='

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}

		return &ast.AssignmentStmt{Target: target, Value: value, Pos: pos}, nil
	}

	switch target.(type) {
	case *ast.FunCallExpr, *ast.DotExpr:
		if p.current.Type != TokenSemicolon {
			return nil, p.syntaxError(TokenAssign, TokenSemicolon)
		}
		p.advance() // consume ';'

		discard := &ast.LiteralExpr{
			Value: ast.Value{Kind: ast.KindNil, Raw: "Nil", Pos: pos},
			Pos:   pos,
		}
		return &ast.AssignmentStmt{Target: discard, Value: target, Pos: pos}, nil

	default:
		return nil, p.syntaxError(TokenAssign)
	}
}

// parseBlock parses a brace delimited statement block. Brace blocks
// written in the source always open a scope.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	pos := p.currentPosition()
	if _, err := p.expect(TokenLeftBrace); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for p.current.Type != TokenRightBrace && p.current.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(TokenRightBrace); err != nil {
		return nil, err
	}

	return &ast.BlockStmt{Stmts: stmts, IsScope: true, Pos: pos}, nil
}

// parseTypedIdentifier parses "name" or "name: type"
func (p *Parser) parseTypedIdentifier() (ast.Identifier, error) {
	pos := p.currentPosition()
	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return ast.Identifier{}, err
	}

	ident := ast.Identifier{Name: name.Value, Pos: pos}
	if p.current.Type == TokenColon {
		p.advance() // consume ':'

		typeName, err := p.expect(TokenIdentifier)
		if err != nil {
			return ast.Identifier{}, err
		}
		ident.TypeName = typeName.Value
	}

	return ident, nil
}

// Expression parsing, one method per precedence tier, lowest first

// parseExpression parses a full expression. List literals sit at the
// top of the chain: a '[' opens a list only where a whole expression
// is expected, never as a binary operand.
func (p *Parser) parseExpression() (ast.Expr, error) {
	if p.current.Type == TokenLeftBracket {
		return p.parseListLiteral()
	}
	return p.parseLogicalExpression()
}

// parseListLiteral parses "[e1, e2, ...]". The empty list and a
// trailing comma before the closing bracket are both accepted.
func (p *Parser) parseListLiteral() (ast.Expr, error) {
	pos := p.currentPosition()
	p.advance() // consume '['

	var elements []ast.Expr
	for p.current.Type != TokenRightBracket {
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)

		if p.current.Type == TokenComma {
			p.advance() // consume ','
			continue
		}
		if p.current.Type != TokenRightBracket {
			return nil, p.syntaxError(TokenComma, TokenRightBracket)
		}
	}
	p.advance() // consume ']'

	return &ast.ListExpr{Elements: elements, Pos: pos}, nil
}

// parseLogicalExpression parses "and" / "or" chains, folding left
func (p *Parser) parseLogicalExpression() (ast.Expr, error) {
	left, err := p.parseEqualityExpression()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenAnd || p.current.Type == TokenOr {
		op, _ := binaryOpcode(p.current.Type)
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseEqualityExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// parseEqualityExpression parses "==" / "!=" chains, folding left
func (p *Parser) parseEqualityExpression() (ast.Expr, error) {
	left, err := p.parseComparisonExpression()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenEqualEqual || p.current.Type == TokenBangEqual {
		op, _ := binaryOpcode(p.current.Type)
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseComparisonExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// parseComparisonExpression parses ordering chains, folding left
func (p *Parser) parseComparisonExpression() (ast.Expr, error) {
	left, err := p.parseAdditiveExpression()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenLess || p.current.Type == TokenLessEq ||
		p.current.Type == TokenGreater || p.current.Type == TokenGreaterEq {
		op, _ := binaryOpcode(p.current.Type)
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseAdditiveExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// parseAdditiveExpression parses "+" / "-" chains, folding left
func (p *Parser) parseAdditiveExpression() (ast.Expr, error) {
	left, err := p.parseMultiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op, _ := binaryOpcode(p.current.Type)
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseMultiplicativeExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// parseMultiplicativeExpression parses "*" / "/" / "%" chains, folding
// left
func (p *Parser) parseMultiplicativeExpression() (ast.Expr, error) {
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash ||
		p.current.Type == TokenPercent {
		op, _ := binaryOpcode(p.current.Type)
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// parseUnaryExpression parses prefix "not" and "-". The tier is right
// recursive so prefix operators can stack, as in "- - x".
func (p *Parser) parseUnaryExpression() (ast.Expr, error) {
	switch p.current.Type {
	case TokenNot, TokenMinus:
		op := ast.OpNot
		if p.current.Type == TokenMinus {
			op = ast.OpSub
		}
		pos := p.currentPosition()
		p.advance()

		operand, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpExpr{Op: op, Operand: operand, Pos: pos}, nil
	}

	return p.parseCallOrDotExpression()
}

// parseCallOrDotExpression disambiguates the identifier headed forms
// with one token of lookahead: a name followed by '(' is a call, a
// name followed by '.' is a single level member access whose right
// side is itself a call or a field name, and anything else resolves
// the name as a plain reference, optionally typed.
func (p *Parser) parseCallOrDotExpression() (ast.Expr, error) {
	if p.current.Type != TokenIdentifier {
		return p.parsePrimaryExpression()
	}

	name := p.current
	pos := p.currentPosition()
	p.advance()

	switch p.current.Type {
	case TokenLeftParen:
		return p.parseFunCall(name.Value, pos)

	case TokenDot:
		p.advance() // consume '.'

		member, err := p.parseDotMember()
		if err != nil {
			return nil, err
		}
		return &ast.DotExpr{
			Target: ast.Identifier{Name: name.Value, Pos: pos},
			Member: member,
			Pos:    pos,
		}, nil

	case TokenColon:
		p.advance() // consume ':'

		typeName, err := p.expect(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		ident := ast.Identifier{Name: name.Value, TypeName: typeName.Value, Pos: pos}
		return &ast.IdentifierExpr{Ident: ident, Pos: pos}, nil

	default:
		ident := ast.Identifier{Name: name.Value, Pos: pos}
		return &ast.IdentifierExpr{Ident: ident, Pos: pos}, nil
	}
}

// parseFunCall parses a call's argument list. The opening parenthesis
// is the current token when this is called.
func (p *Parser) parseFunCall(name string, pos ast.Position) (ast.Expr, error) {
	p.advance() // consume '('

	var args []ast.Expr
	if p.current.Type != TokenRightParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.current.Type != TokenComma {
				break
			}
			p.advance() // consume ','
		}
	}
	if p.current.Type != TokenRightParen {
		return nil, p.syntaxError(TokenComma, TokenRightParen)
	}
	p.advance() // consume ')'

	return &ast.FunCallExpr{Name: name, Args: args, Pos: pos}, nil
}

// parseDotMember parses the right side of a member access: a method
// call "recv.push(x)" or a field name "recv.size". Member access is
// single level, so a further '.' after the member is rejected by
// whichever production follows the expression.
func (p *Parser) parseDotMember() (ast.Expr, error) {
	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	pos := ast.Position{Line: name.Line, Column: name.Column, Offset: name.Position}

	if p.current.Type == TokenLeftParen {
		return p.parseFunCall(name.Value, pos)
	}

	ident := ast.Identifier{Name: name.Value, Pos: pos}
	return &ast.IdentifierExpr{Ident: ident, Pos: pos}, nil
}

// parsePrimaryExpression parses the grammar leaves: literal values and
// parenthesized subexpressions. Identifier headed forms never reach
// this method, they are resolved a tier above.
func (p *Parser) parsePrimaryExpression() (ast.Expr, error) {
	pos := p.currentPosition()

	switch p.current.Type {
	case TokenNumber:
		return p.parseNumberLiteral()

	case TokenString:
		value := ast.Value{Kind: ast.KindString, Raw: p.current.Value, Value: p.current.Value, Pos: pos}
		p.advance()
		return &ast.LiteralExpr{Value: value, Pos: pos}, nil

	case TokenBoolean:
		value := ast.Value{Kind: ast.KindBoolean, Raw: p.current.Value, Value: p.current.Value == "True", Pos: pos}
		p.advance()
		return &ast.LiteralExpr{Value: value, Pos: pos}, nil

	case TokenNil:
		value := ast.Value{Kind: ast.KindNil, Raw: p.current.Value, Pos: pos}
		p.advance()
		return &ast.LiteralExpr{Value: value, Pos: pos}, nil

	case TokenLeftParen:
		p.advance() // consume '('

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxError(expressionStart...)
	}
}

// parseNumberLiteral converts an integer literal token. esta integers
// are 64 bit signed; a literal outside that range is a hard error, not
// a wraparound.
func (p *Parser) parseNumberLiteral() (ast.Expr, error) {
	raw := p.current.Value
	pos := p.currentPosition()

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &LiteralError{
			Token:  p.current,
			Reason: fmt.Sprintf("number '%s' overflows the 64 bit integer range", raw),
			Err:    err,
		}
	}
	p.advance()

	value := ast.Value{Kind: ast.KindNumber, Raw: raw, Value: n, Pos: pos}
	return &ast.LiteralExpr{Value: value, Pos: pos}, nil
}

// Utility methods

// expressionStart lists the token types that can begin an expression,
// the expected set reported when none of them is present
var expressionStart = []TokenType{
	TokenIdentifier, TokenNumber, TokenString, TokenBoolean, TokenNil,
	TokenNot, TokenMinus, TokenLeftParen, TokenLeftBracket,
}

// advance moves to the next token
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

// currentPosition returns the current token's AST position
func (p *Parser) currentPosition() ast.Position {
	return ast.Position{
		Line:   p.current.Line,
		Column: p.current.Column,
		Offset: p.current.Position,
	}
}

// expect consumes and returns the current token when it has the given
// type, otherwise it fails with a syntax error naming that type
func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.current.Type != tt {
		return p.current, p.syntaxError(tt)
	}

	tok := p.current
	p.advance()
	return tok, nil
}

// syntaxError builds a SyntaxError pointing at the current token
func (p *Parser) syntaxError(expected ...TokenType) error {
	return &SyntaxError{Found: p.current, Expected: expected}
}

// binaryOpcode maps an operator token type to its AST opcode
func binaryOpcode(tt TokenType) (ast.Opcode, bool) {
	switch tt {
	case TokenAnd:
		return ast.OpAnd, true
	case TokenOr:
		return ast.OpOr, true
	case TokenEqualEqual:
		return ast.OpEqualEqual, true
	case TokenBangEqual:
		return ast.OpBangEqual, true
	case TokenLess:
		return ast.OpLesser, true
	case TokenGreater:
		return ast.OpGreater, true
	case TokenLessEq:
		return ast.OpLesserEqual, true
	case TokenGreaterEq:
		return ast.OpGreaterEqual, true
	case TokenPlus:
		return ast.OpAdd, true
	case TokenMinus:
		return ast.OpSub, true
	case TokenStar:
		return ast.OpMul, true
	case TokenSlash:
		return ast.OpDiv, true
	case TokenPercent:
		return ast.OpMod, true
	}
	return 0, false
}
