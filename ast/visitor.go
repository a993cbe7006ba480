// File: visitor.go
// Title: AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and
//              processing esta AST nodes. Provides the base visitor
//              interface and common visitor implementations for tree
//              dumps, validation, and node collection.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit structural nodes
	VisitProgram(program *Program) interface{}
	VisitBlock(block *BlockStmt) interface{}

	// Visit statement nodes
	VisitDeclaration(stmt *DeclarationStmt) interface{}
	VisitAssignment(stmt *AssignmentStmt) interface{}
	VisitWhile(stmt *WhileStmt) interface{}
	VisitIf(stmt *IfStmt) interface{}
	VisitFunDecl(stmt *FunDeclStmt) interface{}
	VisitStruct(stmt *StructStmt) interface{}
	VisitReturn(stmt *ReturnStmt) interface{}

	// Visit expression nodes
	VisitLiteral(expr *LiteralExpr) interface{}
	VisitIdentifier(expr *IdentifierExpr) interface{}
	VisitList(expr *ListExpr) interface{}
	VisitBinaryOp(expr *BinaryOpExpr) interface{}
	VisitUnaryOp(expr *UnaryOpExpr) interface{}
	VisitFunCall(expr *FunCallExpr) interface{}
	VisitDot(expr *DotExpr) interface{}
}

// BaseVisitor provides default implementations for all visitor methods
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} {
	for _, stmt := range program.Stmts {
		if stmt != nil {
			stmt.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitBlock(block *BlockStmt) interface{} {
	for _, stmt := range block.Stmts {
		if stmt != nil {
			stmt.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitDeclaration(stmt *DeclarationStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitAssignment(stmt *AssignmentStmt) interface{} {
	if stmt.Target != nil {
		stmt.Target.Accept(bv)
	}
	if stmt.Value != nil {
		stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitWhile(stmt *WhileStmt) interface{} {
	if stmt.Cond != nil {
		stmt.Cond.Accept(bv)
	}
	if stmt.Body != nil {
		stmt.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIf(stmt *IfStmt) interface{} {
	if stmt.Cond != nil {
		stmt.Cond.Accept(bv)
	}
	if stmt.Then != nil {
		stmt.Then.Accept(bv)
	}
	if stmt.Else != nil {
		stmt.Else.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunDecl(stmt *FunDeclStmt) interface{} {
	if stmt.Body != nil {
		stmt.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitStruct(stmt *StructStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitReturn(stmt *ReturnStmt) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIdentifier(expr *IdentifierExpr) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitList(expr *ListExpr) interface{} {
	for _, element := range expr.Elements {
		if element != nil {
			element.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryOp(expr *BinaryOpExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitUnaryOp(expr *UnaryOpExpr) interface{} {
	if expr.Operand != nil {
		return expr.Operand.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunCall(expr *FunCallExpr) interface{} {
	for _, arg := range expr.Args {
		if arg != nil {
			arg.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitDot(expr *DotExpr) interface{} {
	if expr.Member != nil {
		return expr.Member.Accept(bv)
	}
	return nil
}

// StringVisitor creates an indented string representation of the AST.
// Statements appear one per line, expressions render inline.
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) writeIndent() {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
}

func (sv *StringVisitor) VisitProgram(program *Program) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString("Program:\n")
	sv.indent++

	for _, stmt := range program.Stmts {
		stmt.Accept(sv)
	}

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitBlock(block *BlockStmt) interface{} {
	sv.writeIndent()
	if block.IsScope {
		sv.buffer.WriteString("Block (scope):\n")
	} else {
		sv.buffer.WriteString("Block (group):\n")
	}
	sv.indent++

	for _, stmt := range block.Stmts {
		stmt.Accept(sv)
	}

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitDeclaration(stmt *DeclarationStmt) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf("Declaration: %s\n", stmt.Ident))
	return nil
}

func (sv *StringVisitor) VisitAssignment(stmt *AssignmentStmt) interface{} {
	sv.writeIndent()
	if stmt.IsDiscard() {
		sv.buffer.WriteString("Discard: ")
		stmt.Value.Accept(sv)
		sv.buffer.WriteString("\n")
		return nil
	}

	sv.buffer.WriteString("Assignment: ")
	stmt.Target.Accept(sv)
	sv.buffer.WriteString(" = ")
	stmt.Value.Accept(sv)
	sv.buffer.WriteString("\n")
	return nil
}

func (sv *StringVisitor) VisitWhile(stmt *WhileStmt) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString("While: ")
	stmt.Cond.Accept(sv)
	sv.buffer.WriteString("\n")

	sv.indent++
	stmt.Body.Accept(sv)
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitIf(stmt *IfStmt) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString("If: ")
	stmt.Cond.Accept(sv)
	sv.buffer.WriteString("\n")
	sv.indent++

	sv.writeIndent()
	sv.buffer.WriteString("Then:\n")
	sv.indent++
	stmt.Then.Accept(sv)
	sv.indent--

	sv.writeIndent()
	sv.buffer.WriteString("Else:\n")
	sv.indent++
	stmt.Else.Accept(sv)
	sv.indent--

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitFunDecl(stmt *FunDeclStmt) interface{} {
	params := make([]string, len(stmt.Params))
	for i, param := range stmt.Params {
		params[i] = param.String()
	}

	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf("FunDecl: %s(%s)\n", stmt.Name, strings.Join(params, ", ")))

	sv.indent++
	stmt.Body.Accept(sv)
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitStruct(stmt *StructStmt) interface{} {
	fields := make([]string, len(stmt.Fields))
	for i, field := range stmt.Fields {
		fields[i] = field.String()
	}

	sv.writeIndent()
	if len(fields) == 0 {
		sv.buffer.WriteString(fmt.Sprintf("Struct: %s { }\n", stmt.Name))
	} else {
		sv.buffer.WriteString(fmt.Sprintf("Struct: %s { %s }\n", stmt.Name, strings.Join(fields, ", ")))
	}
	return nil
}

func (sv *StringVisitor) VisitReturn(stmt *ReturnStmt) interface{} {
	sv.writeIndent()
	if stmt.Value == nil {
		sv.buffer.WriteString("Return\n")
		return nil
	}

	sv.buffer.WriteString("Return: ")
	stmt.Value.Accept(sv)
	sv.buffer.WriteString("\n")
	return nil
}

func (sv *StringVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	sv.buffer.WriteString(fmt.Sprintf("%s(%s)", expr.Value.Kind, expr.Value.Raw))
	return nil
}

func (sv *StringVisitor) VisitIdentifier(expr *IdentifierExpr) interface{} {
	sv.buffer.WriteString(expr.Ident.String())
	return nil
}

func (sv *StringVisitor) VisitList(expr *ListExpr) interface{} {
	sv.buffer.WriteString("[")
	for i, element := range expr.Elements {
		if i > 0 {
			sv.buffer.WriteString(", ")
		}
		element.Accept(sv)
	}
	sv.buffer.WriteString("]")
	return nil
}

func (sv *StringVisitor) VisitBinaryOp(expr *BinaryOpExpr) interface{} {
	sv.buffer.WriteString("(")
	expr.Left.Accept(sv)
	sv.buffer.WriteString(fmt.Sprintf(" %s ", expr.Op))
	expr.Right.Accept(sv)
	sv.buffer.WriteString(")")
	return nil
}

func (sv *StringVisitor) VisitUnaryOp(expr *UnaryOpExpr) interface{} {
	sv.buffer.WriteString(fmt.Sprintf("(%s ", expr.Op))
	expr.Operand.Accept(sv)
	sv.buffer.WriteString(")")
	return nil
}

func (sv *StringVisitor) VisitFunCall(expr *FunCallExpr) interface{} {
	sv.buffer.WriteString(fmt.Sprintf("%s(", expr.Name))
	for i, arg := range expr.Args {
		if i > 0 {
			sv.buffer.WriteString(", ")
		}
		arg.Accept(sv)
	}
	sv.buffer.WriteString(")")
	return nil
}

func (sv *StringVisitor) VisitDot(expr *DotExpr) interface{} {
	sv.buffer.WriteString(expr.Target.Name)
	sv.buffer.WriteString(".")
	expr.Member.Accept(sv)
	return nil
}

// ValidationVisitor validates AST nodes and collects errors. Every
// defective statement contributes one error, wherever it sits in the
// tree; a statement's own Validate covers the expressions it holds.
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

// Statements are dispatched on this visitor rather than on the
// embedded base, so failures inside one statement never mask failures
// in another. Container statements check their header shape and leave
// their blocks to the walk; the other statements validate in one piece.

func (vv *ValidationVisitor) VisitProgram(program *Program) interface{} {
	for i, stmt := range program.Stmts {
		if stmt == nil {
			vv.addError(fmt.Errorf("program validation failed: statement %d is nil", i))
			continue
		}
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitBlock(block *BlockStmt) interface{} {
	for i, stmt := range block.Stmts {
		if stmt == nil {
			vv.addError(fmt.Errorf("block validation failed: statement %d is nil", i))
			continue
		}
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitDeclaration(stmt *DeclarationStmt) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("declaration validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitAssignment(stmt *AssignmentStmt) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("assignment validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitWhile(stmt *WhileStmt) interface{} {
	if err := stmt.validateHeader(); err != nil {
		vv.addError(fmt.Errorf("while statement validation failed: %w", err))
	}
	if stmt.Body != nil {
		stmt.Body.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitIf(stmt *IfStmt) interface{} {
	if err := stmt.validateHeader(); err != nil {
		vv.addError(fmt.Errorf("if statement validation failed: %w", err))
	}
	if stmt.Then != nil {
		stmt.Then.Accept(vv)
	}
	if stmt.Else != nil {
		stmt.Else.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitFunDecl(stmt *FunDeclStmt) interface{} {
	if err := stmt.validateHeader(); err != nil {
		vv.addError(fmt.Errorf("function declaration validation failed: %w", err))
	}
	if stmt.Body != nil {
		stmt.Body.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitStruct(stmt *StructStmt) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("struct declaration validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitReturn(stmt *ReturnStmt) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("return statement validation failed: %w", err))
	}
	return nil
}

// Expression visits only run when the walk starts at an expression;
// statement visits validate their expressions through Validate.

func (vv *ValidationVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("literal validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitIdentifier(expr *IdentifierExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("identifier validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitList(expr *ListExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("list validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitBinaryOp(expr *BinaryOpExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("binary expression validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitUnaryOp(expr *UnaryOpExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("unary expression validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitFunCall(expr *FunCallExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("function call validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitDot(expr *DotExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("dot expression validation failed: %w", err))
	}
	return nil
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	FunDecls    []*FunDeclStmt
	Structs     []*StructStmt
	Identifiers []*IdentifierExpr
	Literals    []*LiteralExpr
	Calls       []*FunCallExpr
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		FunDecls:    make([]*FunDeclStmt, 0),
		Structs:     make([]*StructStmt, 0),
		Identifiers: make([]*IdentifierExpr, 0),
		Literals:    make([]*LiteralExpr, 0),
		Calls:       make([]*FunCallExpr, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.FunDecls = cv.FunDecls[:0]
	cv.Structs = cv.Structs[:0]
	cv.Identifiers = cv.Identifiers[:0]
	cv.Literals = cv.Literals[:0]
	cv.Calls = cv.Calls[:0]
}

func (cv *CollectorVisitor) VisitFunDecl(stmt *FunDeclStmt) interface{} {
	cv.FunDecls = append(cv.FunDecls, stmt)
	if stmt.Body != nil {
		stmt.Body.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitStruct(stmt *StructStmt) interface{} {
	cv.Structs = append(cv.Structs, stmt)
	return nil
}

func (cv *CollectorVisitor) VisitIdentifier(expr *IdentifierExpr) interface{} {
	cv.Identifiers = append(cv.Identifiers, expr)
	return nil
}

func (cv *CollectorVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	cv.Literals = append(cv.Literals, expr)
	return nil
}

func (cv *CollectorVisitor) VisitFunCall(expr *FunCallExpr) interface{} {
	cv.Calls = append(cv.Calls, expr)
	for _, arg := range expr.Args {
		if arg != nil {
			arg.Accept(cv)
		}
	}
	return nil
}

// Override the traversing visitor methods so that nested nodes are
// collected on this visitor rather than on the embedded base

func (cv *CollectorVisitor) VisitProgram(program *Program) interface{} {
	for _, stmt := range program.Stmts {
		if stmt != nil {
			stmt.Accept(cv)
		}
	}
	return nil
}

func (cv *CollectorVisitor) VisitBlock(block *BlockStmt) interface{} {
	for _, stmt := range block.Stmts {
		if stmt != nil {
			stmt.Accept(cv)
		}
	}
	return nil
}

func (cv *CollectorVisitor) VisitAssignment(stmt *AssignmentStmt) interface{} {
	if stmt.Target != nil {
		stmt.Target.Accept(cv)
	}
	if stmt.Value != nil {
		stmt.Value.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitWhile(stmt *WhileStmt) interface{} {
	if stmt.Cond != nil {
		stmt.Cond.Accept(cv)
	}
	if stmt.Body != nil {
		stmt.Body.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitIf(stmt *IfStmt) interface{} {
	if stmt.Cond != nil {
		stmt.Cond.Accept(cv)
	}
	if stmt.Then != nil {
		stmt.Then.Accept(cv)
	}
	if stmt.Else != nil {
		stmt.Else.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitReturn(stmt *ReturnStmt) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitList(expr *ListExpr) interface{} {
	for _, element := range expr.Elements {
		if element != nil {
			element.Accept(cv)
		}
	}
	return nil
}

func (cv *CollectorVisitor) VisitBinaryOp(expr *BinaryOpExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(cv)
	}
	if expr.Right != nil {
		expr.Right.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitUnaryOp(expr *UnaryOpExpr) interface{} {
	if expr.Operand != nil {
		return expr.Operand.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitDot(expr *DotExpr) interface{} {
	if expr.Member != nil {
		return expr.Member.Accept(cv)
	}
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to an indented string representation
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects declarations, identifiers, literals, and calls
// from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
