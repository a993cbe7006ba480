// File: nodes.go
// Title: AST Node Definitions
// Description: Defines all AST node types for representing parsed esta
//              programs including statements, expressions, literals, and
//              operators. Provides string representations and validation
//              methods.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/isgasho/esta/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact, source-like representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic structural validation of the node
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Program represents a complete parsed source file
type Program struct {
	Stmts []Stmt   // Top-level statements in source order
	Pos   Position // Source position of the first statement
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Statement types

// DeclarationStmt introduces a variable name without assigning to it
type DeclarationStmt struct {
	Ident Identifier // Declared name with optional type annotation
	Pos   Position   // Source position
}

// AssignmentStmt stores a value under an assignment target. A target of
// the Nil literal marks a discarded expression statement such as a bare
// call: the value is evaluated and the result thrown away.
type AssignmentStmt struct {
	Target Expr     // Identifier or member target, or the Nil literal for discards
	Value  Expr     // Assigned value
	Pos    Position // Source position
}

// WhileStmt loops while its condition evaluates to true. Body is always
// a scoping block, including loops that were written as for statements.
type WhileStmt struct {
	Cond Expr       // Loop condition
	Body *BlockStmt // Loop body, IsScope is always true
	Pos  Position   // Source position
}

// IfStmt branches on a condition. Both branches are always present: a
// missing else clause parses as an empty scoping block, so consumers
// never need a nil check.
type IfStmt struct {
	Cond Expr       // Branch condition
	Then *BlockStmt // Taken when the condition holds
	Else *BlockStmt // Taken otherwise, empty when no else was written
	Pos  Position   // Source position
}

// FunDeclStmt declares a named function. The return type, when written,
// is carried as the type annotation on Name.
type FunDeclStmt struct {
	Name   Identifier   // Function name, TypeName holds the return type
	Params []Identifier // Parameters with optional type annotations
	Body   *BlockStmt   // Function body, IsScope is always true
	Pos    Position     // Source position
}

// StructStmt declares a record type as a bare field list. Struct
// declarations carry no methods and no body statements.
type StructStmt struct {
	Name   string       // Type name
	Fields []Identifier // Fields with optional type annotations
	Pos    Position     // Source position
}

// ReturnStmt leaves the enclosing function
type ReturnStmt struct {
	Value Expr     // Returned value, nil for a bare return
	Pos   Position // Source position
}

// BlockStmt groups statements. IsScope distinguishes a brace block
// written in the source, which opens a variable scope, from the flat
// statement groups the parser fabricates while desugaring initialized
// declarations and for loops.
type BlockStmt struct {
	Stmts   []Stmt   // Grouped statements
	IsScope bool     // True for brace blocks, false for fabricated groups
	Pos     Position // Source position
}

// Identifier is a name with an optional type annotation, written in the
// source as "name" or "name: type". It is a plain value type: the parser
// constructs it once and nothing mutates it afterwards.
type Identifier struct {
	Name     string   // Identifier name
	TypeName string   // Type annotation, empty when none was written
	Pos      Position // Source position
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Value represents a literal value. Raw holds the token text as the
// lexer produced it; for strings the surrounding quotes are already
// stripped and no escape sequences are interpreted.
type Value struct {
	Kind  LiteralKind // Kind of the literal
	Raw   string      // Raw token text
	Value interface{} // Decoded value: int64, bool, string, or nil
	Pos   Position    // Source position
}

// LiteralKind represents the kind of a literal value
type LiteralKind int

const (
	KindNumber  LiteralKind = iota // Decimal integer backed by an int64
	KindBoolean                    // One of the keywords True and False
	KindString                     // Double-quoted string
	KindNil                        // The Nil keyword
)

// String returns string representation of LiteralKind
func (k LiteralKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNil:
		return "nil"
	default:
		return "unknown"
	}
}

// Opcode identifies the operator of a binary or unary expression. The
// set is closed: the parser never produces values outside this list.
type Opcode int

const (
	OpAnd          Opcode = iota // Logical conjunction keyword
	OpOr                         // Logical disjunction keyword
	OpEqualEqual                 // Equality comparison ==
	OpBangEqual                  // Inequality comparison !=
	OpLesser                     // Ordering comparison <
	OpGreater                    // Ordering comparison >
	OpLesserEqual                // Ordering comparison <=
	OpGreaterEqual               // Ordering comparison >=
	OpAdd                        // Addition +
	OpSub                        // Subtraction, and negation in unary position
	OpMul                        // Multiplication *
	OpDiv                        // Division /
	OpMod                        // Remainder %
	OpNot                        // Logical negation keyword, unary only
)

// String returns the source-level spelling of the operator
func (op Opcode) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpEqualEqual:
		return "=="
	case OpBangEqual:
		return "!="
	case OpLesser:
		return "<"
	case OpGreater:
		return ">"
	case OpLesserEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpNot:
		return "not"
	default:
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
}

// IsBinary returns true if the opcode may appear between two operands
func (op Opcode) IsBinary() bool {
	return op >= OpAnd && op <= OpMod
}

// IsUnary returns true if the opcode may prefix a single operand. Minus
// doubles as subtraction and negation.
func (op Opcode) IsUnary() bool {
	return op == OpNot || op == OpSub
}

// Expression types

// LiteralExpr represents a literal value used as an expression
type LiteralExpr struct {
	Value Value    // Literal payload
	Pos   Position // Source position
}

// IdentifierExpr represents a name used as an expression
type IdentifierExpr struct {
	Ident Identifier // Referenced name
	Pos   Position   // Source position
}

// ListExpr represents a list literal [1, 2, 3]. Empty lists and lists
// written with a trailing comma produce the same node shape.
type ListExpr struct {
	Elements []Expr   // List elements in source order
	Pos      Position // Source position
}

// BinaryOpExpr represents an infix expression (a + b, x and y, etc.).
// The parser folds operator runs of equal precedence to the left, so
// a-b-c arrives as ((a-b)-c).
type BinaryOpExpr struct {
	Left  Expr     // Left operand
	Op    Opcode   // Operator
	Right Expr     // Right operand
	Pos   Position // Source position
}

// UnaryOpExpr represents a prefix expression (not a, -a). Unary
// operators nest to the right, so "not not x" arrives as (not (not x)).
type UnaryOpExpr struct {
	Op      Opcode   // Operator
	Operand Expr     // Operand expression
	Pos     Position // Source position
}

// FunCallExpr represents a free function call
type FunCallExpr struct {
	Name string   // Function name
	Args []Expr   // Call arguments
	Pos  Position // Source position
}

// DotExpr represents a single-level member access on a named receiver.
// Member is either a *FunCallExpr for a method call or an
// *IdentifierExpr for a field read. Chains such as a.b.c are rejected
// by the parser, so Target is always a plain identifier.
type DotExpr struct {
	Target Identifier // Receiver name
	Member Expr       // Accessed member
	Pos    Position   // Source position
}

// Implementation of Node interface for Program

func (p *Program) String() string {
	parts := make([]string, len(p.Stmts))
	for i, stmt := range p.Stmts {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return p.Pos
}

func (p *Program) Validate() error {
	for i, stmt := range p.Stmts {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// Implementation of Node interface for DeclarationStmt

func (ds *DeclarationStmt) String() string {
	return "var " + ds.Ident.String() + ";"
}

func (ds *DeclarationStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitDeclaration(ds)
}

func (ds *DeclarationStmt) Position() Position {
	return ds.Pos
}

func (ds *DeclarationStmt) Validate() error {
	return ds.Ident.Validate()
}

func (ds *DeclarationStmt) stmtNode() {}

// Implementation of Node interface for AssignmentStmt

func (as *AssignmentStmt) String() string {
	if as.IsDiscard() {
		return fmt.Sprintf("%s;", as.Value)
	}
	return fmt.Sprintf("%s = %s;", as.Target, as.Value)
}

func (as *AssignmentStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(as)
}

func (as *AssignmentStmt) Position() Position {
	return as.Pos
}

func (as *AssignmentStmt) Validate() error {
	if as.Target == nil {
		return fmt.Errorf("assignment target is required")
	}
	if as.Value == nil {
		return fmt.Errorf("assignment value is required")
	}

	switch target := as.Target.(type) {
	case *IdentifierExpr:
	case *DotExpr:
	case *LiteralExpr:
		if target.Value.Kind != KindNil {
			return fmt.Errorf("only the Nil literal may stand in for a discarded target, got %s literal", target.Value.Kind)
		}
	default:
		return fmt.Errorf("assignment target must be an identifier or member access, got %T", as.Target)
	}

	if err := as.Target.Validate(); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if err := as.Value.Validate(); err != nil {
		return fmt.Errorf("value: %w", err)
	}

	return nil
}

// IsDiscard returns true if the assignment drops its value instead of
// storing it
func (as *AssignmentStmt) IsDiscard() bool {
	literal, ok := as.Target.(*LiteralExpr)
	return ok && literal.Value.Kind == KindNil
}

func (as *AssignmentStmt) stmtNode() {}

// Implementation of Node interface for WhileStmt

func (ws *WhileStmt) String() string {
	return fmt.Sprintf("while %s %s", ws.Cond, ws.Body)
}

func (ws *WhileStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitWhile(ws)
}

func (ws *WhileStmt) Position() Position {
	return ws.Pos
}

func (ws *WhileStmt) Validate() error {
	if err := ws.validateHeader(); err != nil {
		return err
	}
	if err := ws.Body.Validate(); err != nil {
		return fmt.Errorf("body: %w", err)
	}
	return nil
}

// validateHeader checks the loop apart from its body's statements, so
// the validation visitor can report those per statement.
func (ws *WhileStmt) validateHeader() error {
	if ws.Cond == nil {
		return fmt.Errorf("loop condition is required")
	}
	if ws.Body == nil {
		return fmt.Errorf("loop body is required")
	}
	if !ws.Body.IsScope {
		return fmt.Errorf("loop body must open its own scope")
	}
	if err := ws.Cond.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	return nil
}

func (ws *WhileStmt) stmtNode() {}

// Implementation of Node interface for IfStmt

func (is *IfStmt) String() string {
	if is.Else == nil || len(is.Else.Stmts) == 0 {
		return fmt.Sprintf("if %s %s", is.Cond, is.Then)
	}
	return fmt.Sprintf("if %s %s else %s", is.Cond, is.Then, is.Else)
}

func (is *IfStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitIf(is)
}

func (is *IfStmt) Position() Position {
	return is.Pos
}

func (is *IfStmt) Validate() error {
	if err := is.validateHeader(); err != nil {
		return err
	}
	if err := is.Then.Validate(); err != nil {
		return fmt.Errorf("then branch: %w", err)
	}
	if err := is.Else.Validate(); err != nil {
		return fmt.Errorf("else branch: %w", err)
	}
	return nil
}

func (is *IfStmt) validateHeader() error {
	if is.Cond == nil {
		return fmt.Errorf("branch condition is required")
	}
	if is.Then == nil {
		return fmt.Errorf("then branch is required")
	}
	if is.Else == nil {
		return fmt.Errorf("else branch is required, use an empty block when no else was written")
	}
	if !is.Then.IsScope {
		return fmt.Errorf("then branch must open its own scope")
	}
	if !is.Else.IsScope {
		return fmt.Errorf("else branch must open its own scope")
	}
	if err := is.Cond.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	return nil
}

func (is *IfStmt) stmtNode() {}

// Implementation of Node interface for FunDeclStmt

func (fd *FunDeclStmt) String() string {
	params := make([]string, len(fd.Params))
	for i, param := range fd.Params {
		params[i] = param.String()
	}
	return fmt.Sprintf("fun %s(%s) %s", fd.Name, strings.Join(params, ", "), fd.Body)
}

func (fd *FunDeclStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunDecl(fd)
}

func (fd *FunDeclStmt) Position() Position {
	return fd.Pos
}

func (fd *FunDeclStmt) Validate() error {
	if err := fd.validateHeader(); err != nil {
		return err
	}
	if err := fd.Body.Validate(); err != nil {
		return fmt.Errorf("body: %w", err)
	}
	return nil
}

func (fd *FunDeclStmt) validateHeader() error {
	if err := fd.Name.Validate(); err != nil {
		return fmt.Errorf("function name: %w", err)
	}

	for i, param := range fd.Params {
		if err := param.Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}

	if fd.Body == nil {
		return fmt.Errorf("function body is required")
	}
	if !fd.Body.IsScope {
		return fmt.Errorf("function body must open its own scope")
	}
	return nil
}

// HasReturnType returns true if the declaration carries a return-type
// annotation
func (fd *FunDeclStmt) HasReturnType() bool {
	return fd.Name.TypeName != ""
}

func (fd *FunDeclStmt) stmtNode() {}

// Implementation of Node interface for StructStmt

func (ss *StructStmt) String() string {
	if len(ss.Fields) == 0 {
		return fmt.Sprintf("struct %s { }", ss.Name)
	}
	fields := make([]string, len(ss.Fields))
	for i, field := range ss.Fields {
		fields[i] = field.String()
	}
	return fmt.Sprintf("struct %s { %s }", ss.Name, strings.Join(fields, ", "))
}

func (ss *StructStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitStruct(ss)
}

func (ss *StructStmt) Position() Position {
	return ss.Pos
}

func (ss *StructStmt) Validate() error {
	if stringx.IsBlank(ss.Name) {
		return fmt.Errorf("struct name is required")
	}

	for i, field := range ss.Fields {
		if err := field.Validate(); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}

	return nil
}

func (ss *StructStmt) stmtNode() {}

// Implementation of Node interface for ReturnStmt

func (rs *ReturnStmt) String() string {
	if rs.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", rs.Value)
}

func (rs *ReturnStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturn(rs)
}

func (rs *ReturnStmt) Position() Position {
	return rs.Pos
}

func (rs *ReturnStmt) Validate() error {
	if rs.Value == nil {
		return nil
	}
	if err := rs.Value.Validate(); err != nil {
		return fmt.Errorf("return value: %w", err)
	}
	return nil
}

func (rs *ReturnStmt) stmtNode() {}

// Implementation of Node interface for BlockStmt

func (bs *BlockStmt) String() string {
	parts := make([]string, len(bs.Stmts))
	for i, stmt := range bs.Stmts {
		parts[i] = stmt.String()
	}
	if !bs.IsScope {
		return strings.Join(parts, " ")
	}
	if len(parts) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (bs *BlockStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlock(bs)
}

func (bs *BlockStmt) Position() Position {
	return bs.Pos
}

func (bs *BlockStmt) Validate() error {
	for i, stmt := range bs.Stmts {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

func (bs *BlockStmt) stmtNode() {}

// Implementation of Identifier

func (id Identifier) String() string {
	if id.TypeName == "" {
		return id.Name
	}
	return id.Name + ": " + id.TypeName
}

func (id Identifier) Validate() error {
	if stringx.IsBlank(id.Name) {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

// HasType returns true if the identifier carries a type annotation
func (id Identifier) HasType() bool {
	return id.TypeName != ""
}

// Implementation of Value

func (v Value) String() string {
	if v.Kind == KindString {
		return `"` + v.Raw + `"`
	}
	return v.Raw
}

func (v Value) Validate() error {
	switch v.Kind {
	case KindNumber:
		if _, ok := v.Value.(int64); !ok {
			return fmt.Errorf("invalid number value: %v", v.Value)
		}
		return nil
	case KindBoolean:
		if _, ok := v.Value.(bool); !ok {
			return fmt.Errorf("invalid boolean value: %v", v.Value)
		}
		return nil
	case KindString:
		if _, ok := v.Value.(string); !ok {
			return fmt.Errorf("invalid string value: %v", v.Value)
		}
		return nil
	case KindNil:
		if v.Value != nil {
			return fmt.Errorf("nil literal cannot carry a value: %v", v.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown literal kind: %v", v.Kind)
	}
}

// GetNumberValue returns the numeric payload if the literal is a number
func (v Value) GetNumberValue() (int64, bool) {
	val, ok := v.Value.(int64)
	return val, ok
}

// GetBoolValue returns the boolean payload if the literal is a boolean
func (v Value) GetBoolValue() (bool, bool) {
	val, ok := v.Value.(bool)
	return val, ok
}

// GetStringValue returns the string payload if the literal is a string
func (v Value) GetStringValue() (string, bool) {
	val, ok := v.Value.(string)
	return val, ok
}

// IsNil returns true if the literal is the Nil keyword
func (v Value) IsNil() bool {
	return v.Kind == KindNil
}

// Expression implementations

func (le *LiteralExpr) String() string {
	return le.Value.String()
}

func (le *LiteralExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitLiteral(le)
}

func (le *LiteralExpr) Position() Position {
	return le.Pos
}

func (le *LiteralExpr) Validate() error {
	return le.Value.Validate()
}

func (le *LiteralExpr) exprNode() {}

func (ie *IdentifierExpr) String() string {
	return ie.Ident.String()
}

func (ie *IdentifierExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(ie)
}

func (ie *IdentifierExpr) Position() Position {
	return ie.Pos
}

func (ie *IdentifierExpr) Validate() error {
	return ie.Ident.Validate()
}

func (ie *IdentifierExpr) exprNode() {}

func (le *ListExpr) String() string {
	elements := make([]string, len(le.Elements))
	for i, element := range le.Elements {
		elements[i] = element.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(elements, ", "))
}

func (le *ListExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitList(le)
}

func (le *ListExpr) Position() Position {
	return le.Pos
}

func (le *ListExpr) Validate() error {
	for i, element := range le.Elements {
		if element == nil {
			return fmt.Errorf("element %d is nil", i)
		}
		if err := element.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (le *ListExpr) exprNode() {}

func (be *BinaryOpExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", be.Left, be.Op, be.Right)
}

func (be *BinaryOpExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(be)
}

func (be *BinaryOpExpr) Position() Position {
	return be.Pos
}

func (be *BinaryOpExpr) Validate() error {
	if be.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if be.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if !be.Op.IsBinary() {
		return fmt.Errorf("opcode %s cannot be used as a binary operator", be.Op)
	}

	if err := be.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := be.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

func (be *BinaryOpExpr) exprNode() {}

func (ue *UnaryOpExpr) String() string {
	return fmt.Sprintf("(%s %s)", ue.Op, ue.Operand)
}

func (ue *UnaryOpExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryOp(ue)
}

func (ue *UnaryOpExpr) Position() Position {
	return ue.Pos
}

func (ue *UnaryOpExpr) Validate() error {
	if ue.Operand == nil {
		return fmt.Errorf("operand is required")
	}
	if !ue.Op.IsUnary() {
		return fmt.Errorf("opcode %s cannot be used as a unary operator", ue.Op)
	}
	return ue.Operand.Validate()
}

func (ue *UnaryOpExpr) exprNode() {}

func (fc *FunCallExpr) String() string {
	args := make([]string, len(fc.Args))
	for i, arg := range fc.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", fc.Name, strings.Join(args, ", "))
}

func (fc *FunCallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunCall(fc)
}

func (fc *FunCallExpr) Position() Position {
	return fc.Pos
}

func (fc *FunCallExpr) Validate() error {
	if stringx.IsBlank(fc.Name) {
		return fmt.Errorf("function name is required")
	}

	for i, arg := range fc.Args {
		if arg == nil {
			return fmt.Errorf("argument %d is nil", i)
		}
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return nil
}

func (fc *FunCallExpr) exprNode() {}

func (de *DotExpr) String() string {
	return fmt.Sprintf("%s.%s", de.Target.Name, de.Member)
}

func (de *DotExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitDot(de)
}

func (de *DotExpr) Position() Position {
	return de.Pos
}

func (de *DotExpr) Validate() error {
	if err := de.Target.Validate(); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	if de.Member == nil {
		return fmt.Errorf("member is required")
	}

	switch de.Member.(type) {
	case *FunCallExpr, *IdentifierExpr:
	default:
		return fmt.Errorf("member must be a call or an identifier, got %T", de.Member)
	}

	if err := de.Member.Validate(); err != nil {
		return fmt.Errorf("member: %w", err)
	}

	return nil
}

func (de *DotExpr) exprNode() {}
