// File: visitor_test.go
// Title: AST Visitor Pattern Unit Tests
// Description: Comprehensive unit tests for the esta AST visitor pattern
//              including base visitor, string visitor, validation visitor,
//              collector visitor, and utility functions. Tests cover node
//              rendering, tree traversal, error collection, and node
//              collection scenarios.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial comprehensive visitor test suite

package ast

import (
	"strings"
	"testing"
)

// Helper functions for creating test AST nodes

func createNumberLiteral(raw string, value int64) *LiteralExpr {
	return &LiteralExpr{
		Value: Value{Kind: KindNumber, Raw: raw, Value: value},
	}
}

func createStringLiteral(text string) *LiteralExpr {
	return &LiteralExpr{
		Value: Value{Kind: KindString, Raw: text, Value: text},
	}
}

func createBoolLiteral(value bool) *LiteralExpr {
	raw := "False"
	if value {
		raw = "True"
	}
	return &LiteralExpr{
		Value: Value{Kind: KindBoolean, Raw: raw, Value: value},
	}
}

func createNilLiteral() *LiteralExpr {
	return &LiteralExpr{
		Value: Value{Kind: KindNil, Raw: "Nil", Value: nil},
	}
}

func createIdent(name string) *IdentifierExpr {
	return &IdentifierExpr{Ident: Identifier{Name: name}}
}

// createCountLoop builds: while (i < 10) { i = (i + 1); }
func createCountLoop() *WhileStmt {
	return &WhileStmt{
		Cond: &BinaryOpExpr{
			Left:  createIdent("i"),
			Op:    OpLesser,
			Right: createNumberLiteral("10", 10),
		},
		Body: &BlockStmt{
			Stmts: []Stmt{
				&AssignmentStmt{
					Target: createIdent("i"),
					Value: &BinaryOpExpr{
						Left:  createIdent("i"),
						Op:    OpAdd,
						Right: createNumberLiteral("1", 1),
					},
				},
			},
			IsScope: true,
		},
		Pos: Position{Line: 2, Column: 1},
	}
}

// createAddFunction builds: fun add: int(a: int, b: int) { return (a + b); }
func createAddFunction() *FunDeclStmt {
	return &FunDeclStmt{
		Name: Identifier{Name: "add", TypeName: "int"},
		Params: []Identifier{
			{Name: "a", TypeName: "int"},
			{Name: "b", TypeName: "int"},
		},
		Body: &BlockStmt{
			Stmts: []Stmt{
				&ReturnStmt{
					Value: &BinaryOpExpr{
						Left:  createIdent("a"),
						Op:    OpAdd,
						Right: createIdent("b"),
					},
				},
			},
			IsScope: true,
		},
		Pos: Position{Line: 4, Column: 1},
	}
}

// createPointStruct builds: struct Point { x: int, y: int }
func createPointStruct() *StructStmt {
	return &StructStmt{
		Name: "Point",
		Fields: []Identifier{
			{Name: "x", TypeName: "int"},
			{Name: "y", TypeName: "int"},
		},
		Pos: Position{Line: 8, Column: 1},
	}
}

// createVarInit builds the desugared form of "var i = 0;": a non-scoping
// group holding the declaration and the initializing assignment.
func createVarInit() *BlockStmt {
	return &BlockStmt{
		Stmts: []Stmt{
			&DeclarationStmt{Ident: Identifier{Name: "i"}},
			&AssignmentStmt{
				Target: createIdent("i"),
				Value:  createNumberLiteral("0", 0),
			},
		},
		IsScope: false,
		Pos:     Position{Line: 1, Column: 1},
	}
}

// createDiscardCall builds the desugared form of "print(i);": an
// assignment whose target is the Nil literal.
func createDiscardCall() *AssignmentStmt {
	return &AssignmentStmt{
		Target: createNilLiteral(),
		Value: &FunCallExpr{
			Name: "print",
			Args: []Expr{createIdent("i")},
		},
		Pos: Position{Line: 9, Column: 1},
	}
}

func createTestProgram() *Program {
	return &Program{
		Stmts: []Stmt{
			createVarInit(),
			createCountLoop(),
			createAddFunction(),
			createPointStruct(),
			createDiscardCall(),
		},
		Pos: Position{Line: 1, Column: 1},
	}
}

// Test cases for node rendering

func TestNodeString(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{
			name:     "Declaration without type",
			node:     &DeclarationStmt{Ident: Identifier{Name: "x"}},
			expected: "var x;",
		},
		{
			name:     "Declaration with type",
			node:     &DeclarationStmt{Ident: Identifier{Name: "x", TypeName: "int"}},
			expected: "var x: int;",
		},
		{
			name: "Assignment",
			node: &AssignmentStmt{
				Target: createIdent("x"),
				Value:  createNumberLiteral("5", 5),
			},
			expected: "x = 5;",
		},
		{
			name:     "Discarded call statement",
			node:     createDiscardCall(),
			expected: "print(i);",
		},
		{
			name:     "Bare return",
			node:     &ReturnStmt{},
			expected: "return;",
		},
		{
			name: "Return with value",
			node: &ReturnStmt{
				Value: &BinaryOpExpr{
					Left:  createIdent("n"),
					Op:    OpAdd,
					Right: createNumberLiteral("1", 1),
				},
			},
			expected: "return (n + 1);",
		},
		{
			name:     "While loop",
			node:     createCountLoop(),
			expected: "while (i < 10) { i = (i + 1); }",
		},
		{
			name: "If without else",
			node: &IfStmt{
				Cond: &BinaryOpExpr{
					Left:  createIdent("x"),
					Op:    OpLesser,
					Right: createNumberLiteral("3", 3),
				},
				Then: &BlockStmt{
					Stmts:   []Stmt{&ReturnStmt{Value: createIdent("x")}},
					IsScope: true,
				},
				Else: &BlockStmt{IsScope: true},
			},
			expected: "if (x < 3) { return x; }",
		},
		{
			name: "If with else",
			node: &IfStmt{
				Cond: createIdent("flag"),
				Then: &BlockStmt{
					Stmts: []Stmt{&AssignmentStmt{
						Target: createIdent("y"),
						Value:  createNumberLiteral("1", 1),
					}},
					IsScope: true,
				},
				Else: &BlockStmt{
					Stmts: []Stmt{&AssignmentStmt{
						Target: createIdent("y"),
						Value:  createNumberLiteral("2", 2),
					}},
					IsScope: true,
				},
			},
			expected: "if flag { y = 1; } else { y = 2; }",
		},
		{
			name:     "Function declaration",
			node:     createAddFunction(),
			expected: "fun add: int(a: int, b: int) { return (a + b); }",
		},
		{
			name:     "Struct declaration",
			node:     createPointStruct(),
			expected: "struct Point { x: int, y: int }",
		},
		{
			name:     "Empty struct declaration",
			node:     &StructStmt{Name: "Empty"},
			expected: "struct Empty { }",
		},
		{
			name: "List literal",
			node: &ListExpr{Elements: []Expr{
				createNumberLiteral("1", 1),
				createNumberLiteral("2", 2),
				createNumberLiteral("3", 3),
			}},
			expected: "[1, 2, 3]",
		},
		{
			name:     "Empty list literal",
			node:     &ListExpr{},
			expected: "[]",
		},
		{
			name: "Nested binary expression",
			node: &BinaryOpExpr{
				Left: createNumberLiteral("1", 1),
				Op:   OpAdd,
				Right: &BinaryOpExpr{
					Left:  createNumberLiteral("2", 2),
					Op:    OpMul,
					Right: createNumberLiteral("3", 3),
				},
			},
			expected: "(1 + (2 * 3))",
		},
		{
			name:     "Logical negation",
			node:     &UnaryOpExpr{Op: OpNot, Operand: createIdent("flag")},
			expected: "(not flag)",
		},
		{
			name:     "Numeric negation",
			node:     &UnaryOpExpr{Op: OpSub, Operand: createIdent("n")},
			expected: "(- n)",
		},
		{
			name: "Function call",
			node: &FunCallExpr{Name: "max", Args: []Expr{
				createIdent("a"),
				createIdent("b"),
			}},
			expected: "max(a, b)",
		},
		{
			name: "Dot field access",
			node: &DotExpr{
				Target: Identifier{Name: "p"},
				Member: createIdent("x"),
			},
			expected: "p.x",
		},
		{
			name: "Dot method call",
			node: &DotExpr{
				Target: Identifier{Name: "items"},
				Member: &FunCallExpr{Name: "push", Args: []Expr{createNumberLiteral("4", 4)}},
			},
			expected: "items.push(4)",
		},
		{
			name:     "String literal",
			node:     createStringLiteral("hello"),
			expected: `"hello"`,
		},
		{
			name:     "Boolean literal",
			node:     createBoolLiteral(true),
			expected: "True",
		},
		{
			name:     "Nil literal",
			node:     createNilLiteral(),
			expected: "Nil",
		},
		{
			name:     "Non-scoping group renders without braces",
			node:     createVarInit(),
			expected: "var i; i = 0;",
		},
		{
			name:     "Empty scoping block",
			node:     &BlockStmt{IsScope: true},
			expected: "{ }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op       Opcode
		expected string
	}{
		{OpAnd, "and"},
		{OpOr, "or"},
		{OpEqualEqual, "=="},
		{OpBangEqual, "!="},
		{OpLesser, "<"},
		{OpGreater, ">"},
		{OpLesserEqual, "<="},
		{OpGreaterEqual, ">="},
		{OpAdd, "+"},
		{OpSub, "-"},
		{OpMul, "*"},
		{OpDiv, "/"},
		{OpMod, "%"},
		{OpNot, "not"},
		{Opcode(99), "Opcode(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.op.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestOpcodeClasses(t *testing.T) {
	tests := []struct {
		op       Opcode
		isBinary bool
		isUnary  bool
	}{
		{OpAnd, true, false},
		{OpOr, true, false},
		{OpEqualEqual, true, false},
		{OpAdd, true, false},
		{OpSub, true, true},
		{OpMod, true, false},
		{OpNot, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.IsBinary(); got != tt.isBinary {
				t.Errorf("IsBinary() = %v, expected %v", got, tt.isBinary)
			}
			if got := tt.op.IsUnary(); got != tt.isUnary {
				t.Errorf("IsUnary() = %v, expected %v", got, tt.isUnary)
			}
		})
	}
}

func TestLiteralKindString(t *testing.T) {
	tests := []struct {
		kind     LiteralKind
		expected string
	}{
		{KindNumber, "number"},
		{KindBoolean, "boolean"},
		{KindString, "string"},
		{KindNil, "nil"},
		{LiteralKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	number := Value{Kind: KindNumber, Raw: "42", Value: int64(42)}
	boolean := Value{Kind: KindBoolean, Raw: "True", Value: true}
	text := Value{Kind: KindString, Raw: "hi", Value: "hi"}
	null := Value{Kind: KindNil, Raw: "Nil", Value: nil}

	if n, ok := number.GetNumberValue(); !ok || n != 42 {
		t.Errorf("GetNumberValue() = (%d, %v), expected (42, true)", n, ok)
	}
	if _, ok := text.GetNumberValue(); ok {
		t.Error("GetNumberValue() on a string literal should report false")
	}
	if b, ok := boolean.GetBoolValue(); !ok || !b {
		t.Errorf("GetBoolValue() = (%v, %v), expected (true, true)", b, ok)
	}
	if s, ok := text.GetStringValue(); !ok || s != "hi" {
		t.Errorf("GetStringValue() = (%q, %v), expected (\"hi\", true)", s, ok)
	}
	if !null.IsNil() {
		t.Error("IsNil() should report true for the Nil literal")
	}
	if number.IsNil() {
		t.Error("IsNil() should report false for a number literal")
	}
}

func TestIdentifierHelpers(t *testing.T) {
	plain := Identifier{Name: "x"}
	typed := Identifier{Name: "x", TypeName: "int"}

	if plain.HasType() {
		t.Error("HasType() should report false without an annotation")
	}
	if !typed.HasType() {
		t.Error("HasType() should report true with an annotation")
	}

	fn := createAddFunction()
	if !fn.HasReturnType() {
		t.Error("HasReturnType() should report true for an annotated function")
	}

	discard := createDiscardCall()
	if !discard.IsDiscard() {
		t.Error("IsDiscard() should report true for a Nil target")
	}
	stored := &AssignmentStmt{Target: createIdent("x"), Value: createNumberLiteral("1", 1)}
	if stored.IsDiscard() {
		t.Error("IsDiscard() should report false for an identifier target")
	}
}

// Test cases for node validation

func TestNodeValidation(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name:    "Valid program",
			node:    createTestProgram(),
			wantErr: false,
		},
		{
			name:    "Valid loop",
			node:    createCountLoop(),
			wantErr: false,
		},
		{
			name:    "Valid discard assignment",
			node:    createDiscardCall(),
			wantErr: false,
		},
		{
			name:    "Bare return",
			node:    &ReturnStmt{},
			wantErr: false,
		},
		{
			name:    "While without condition",
			node:    &WhileStmt{Body: &BlockStmt{IsScope: true}},
			wantErr: true,
		},
		{
			name: "While body without scope",
			node: &WhileStmt{
				Cond: createBoolLiteral(true),
				Body: &BlockStmt{IsScope: false},
			},
			wantErr: true,
		},
		{
			name: "If without else branch",
			node: &IfStmt{
				Cond: createBoolLiteral(true),
				Then: &BlockStmt{IsScope: true},
			},
			wantErr: true,
		},
		{
			name: "Assignment to a number literal",
			node: &AssignmentStmt{
				Target: createNumberLiteral("5", 5),
				Value:  createNumberLiteral("1", 1),
			},
			wantErr: true,
		},
		{
			name: "Assignment to a list",
			node: &AssignmentStmt{
				Target: &ListExpr{},
				Value:  createNumberLiteral("1", 1),
			},
			wantErr: true,
		},
		{
			name: "Assignment to a call result",
			node: &AssignmentStmt{
				Target: &FunCallExpr{Name: "f"},
				Value:  createNumberLiteral("3", 3),
			},
			wantErr: true,
		},
		{
			name: "Assignment to a struct field",
			node: &AssignmentStmt{
				Target: &DotExpr{Target: Identifier{Name: "p"}, Member: createIdent("x")},
				Value:  createNumberLiteral("5", 5),
			},
			wantErr: false,
		},
		{
			name: "Dot member must not be a binary expression",
			node: &DotExpr{
				Target: Identifier{Name: "p"},
				Member: &BinaryOpExpr{
					Left:  createIdent("x"),
					Op:    OpAdd,
					Right: createIdent("y"),
				},
			},
			wantErr: true,
		},
		{
			name:    "Unary with a binary-only opcode",
			node:    &UnaryOpExpr{Op: OpAdd, Operand: createIdent("x")},
			wantErr: true,
		},
		{
			name: "Binary with a unary-only opcode",
			node: &BinaryOpExpr{
				Left:  createIdent("x"),
				Op:    OpNot,
				Right: createIdent("y"),
			},
			wantErr: true,
		},
		{
			name:    "Blank identifier",
			node:    &IdentifierExpr{Ident: Identifier{Name: "   "}},
			wantErr: true,
		},
		{
			name: "Number literal with wrong payload",
			node: &LiteralExpr{
				Value: Value{Kind: KindNumber, Raw: "5", Value: "5"},
			},
			wantErr: true,
		},
		{
			name: "Binary without left operand",
			node: &BinaryOpExpr{
				Op:    OpAdd,
				Right: createIdent("y"),
			},
			wantErr: true,
		},
		{
			name:    "Function declaration without body",
			node:    &FunDeclStmt{Name: Identifier{Name: "f"}},
			wantErr: true,
		},
		{
			name:    "Struct without name",
			node:    &StructStmt{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no validation error, got: %v", err)
			}
		})
	}
}

// Test cases for BaseVisitor

func TestBaseVisitor_Traversal(t *testing.T) {
	visitor := &BaseVisitor{}

	tests := []struct {
		name string
		node Node
	}{
		{
			name: "Program",
			node: createTestProgram(),
		},
		{
			name: "While loop",
			node: createCountLoop(),
		},
		{
			name: "Function declaration",
			node: createAddFunction(),
		},
		{
			name: "Struct declaration",
			node: createPointStruct(),
		},
		{
			name: "List literal",
			node: &ListExpr{Elements: []Expr{createNumberLiteral("1", 1)}},
		},
		{
			name: "Dot access",
			node: &DotExpr{Target: Identifier{Name: "p"}, Member: createIdent("x")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.node.Accept(visitor)
			if result != nil {
				t.Errorf("Expected nil result, got %v", result)
			}
		})
	}
}

// Test cases for StringVisitor

func TestStringVisitor_ProgramDump(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		contains []string
	}{
		{
			name: "Full program",
			node: createTestProgram(),
			contains: []string{
				"Program:",
				"Block (group):",
				"Declaration: i",
				"Assignment: i = number(0)",
				"While: (i < number(10))",
				"Block (scope):",
				"Assignment: i = (i + number(1))",
				"FunDecl: add: int(a: int, b: int)",
				"Return: (a + b)",
				"Struct: Point { x: int, y: int }",
				"Discard: print(i)",
			},
		},
		{
			name: "If always dumps both branches",
			node: &IfStmt{
				Cond: createBoolLiteral(true),
				Then: &BlockStmt{IsScope: true},
				Else: &BlockStmt{IsScope: true},
			},
			contains: []string{
				"If: boolean(True)",
				"Then:",
				"Else:",
			},
		},
		{
			name: "Bare return",
			node: &ReturnStmt{},
			contains: []string{
				"Return\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewStringVisitor()
			tt.node.Accept(visitor)
			result := visitor.String()

			if result == "" {
				t.Error("Expected non-empty string result")
			}

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected result to contain %q, got:\n%s", expected, result)
				}
			}
		})
	}
}

func TestStringVisitor_IndentsNestedBlocks(t *testing.T) {
	visitor := NewStringVisitor()
	createCountLoop().Accept(visitor)
	result := visitor.String()

	if !strings.Contains(result, "While: (i < number(10))\n") {
		t.Errorf("Expected loop header line, got:\n%s", result)
	}
	if !strings.Contains(result, "  Block (scope):\n") {
		t.Errorf("Expected indented body block, got:\n%s", result)
	}
	if !strings.Contains(result, "    Assignment: i = (i + number(1))\n") {
		t.Errorf("Expected doubly indented body statement, got:\n%s", result)
	}
}

func TestStringVisitor_Reset(t *testing.T) {
	visitor := NewStringVisitor()
	program := createTestProgram()

	// Visit program
	program.Accept(visitor)
	result1 := visitor.String()

	if result1 == "" {
		t.Error("Expected non-empty string after first visit")
	}

	// Reset and visit again
	visitor.Reset()
	program.Accept(visitor)
	result2 := visitor.String()

	if result1 != result2 {
		t.Errorf("Expected same result after reset, got different strings:\nFirst:\n%s\nSecond:\n%s", result1, result2)
	}
}

func TestStringVisitor_ExpressionFormatting(t *testing.T) {
	visitor := NewStringVisitor()

	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name: "Binary expression",
			expr: &BinaryOpExpr{
				Left:  createIdent("x"),
				Op:    OpEqualEqual,
				Right: createNumberLiteral("5", 5),
			},
			expected: "(x == number(5))",
		},
		{
			name:     "Unary expression",
			expr:     &UnaryOpExpr{Op: OpNot, Operand: createIdent("active")},
			expected: "(not active)",
		},
		{
			name: "Function call",
			expr: &FunCallExpr{Name: "max", Args: []Expr{
				createIdent("x"),
				createNumberLiteral("2", 2),
			}},
			expected: "max(x, number(2))",
		},
		{
			name: "List",
			expr: &ListExpr{Elements: []Expr{
				createNumberLiteral("1", 1),
				createStringLiteral("two"),
			}},
			expected: "[number(1), string(two)]",
		},
		{
			name: "Dot field access",
			expr: &DotExpr{
				Target: Identifier{Name: "p"},
				Member: createIdent("x"),
			},
			expected: "p.x",
		},
		{
			name: "Dot method call",
			expr: &DotExpr{
				Target: Identifier{Name: "items"},
				Member: &FunCallExpr{Name: "push", Args: []Expr{createNumberLiteral("4", 4)}},
			},
			expected: "items.push(number(4))",
		},
		{
			name: "Left-folded chain",
			expr: &BinaryOpExpr{
				Left: &BinaryOpExpr{
					Left:  createNumberLiteral("8", 8),
					Op:    OpSub,
					Right: createNumberLiteral("3", 3),
				},
				Op:    OpSub,
				Right: createNumberLiteral("2", 2),
			},
			expected: "((number(8) - number(3)) - number(2))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor.Reset()
			tt.expr.Accept(visitor)
			result := visitor.String()

			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

// Test cases for ValidationVisitor

func TestValidationVisitor_ValidNodes(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{
			name: "Full program",
			node: createTestProgram(),
		},
		{
			name: "While loop",
			node: createCountLoop(),
		},
		{
			name: "Function declaration",
			node: createAddFunction(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewValidationVisitor()
			tt.node.Accept(visitor)

			if visitor.HasErrors() {
				t.Errorf("Expected no validation errors, got: %v", visitor.Errors())
			}
		})
	}
}

func TestValidationVisitor_InvalidNodes(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{
			name: "While without condition",
			node: &WhileStmt{Body: &BlockStmt{IsScope: true}},
		},
		{
			name: "Binary without operands",
			node: &BinaryOpExpr{Op: OpAdd},
		},
		{
			name: "Program with invalid statement",
			node: &Program{
				Stmts: []Stmt{
					&WhileStmt{Body: &BlockStmt{IsScope: true}},
				},
			},
		},
		{
			name: "Dot with invalid member",
			node: &DotExpr{
				Target: Identifier{Name: "p"},
				Member: &ListExpr{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewValidationVisitor()
			tt.node.Accept(visitor)

			if !visitor.HasErrors() {
				t.Error("Expected validation errors, got none")
			}
		})
	}
}

func TestValidationVisitor_ErrorCollection(t *testing.T) {
	visitor := NewValidationVisitor()

	visitor.VisitWhile(&WhileStmt{Body: &BlockStmt{IsScope: true}})
	visitor.VisitBinaryOp(&BinaryOpExpr{Op: OpAdd})

	if len(visitor.Errors()) != 2 {
		t.Errorf("Expected 2 collected errors, got %d: %v", len(visitor.Errors()), visitor.Errors())
	}

	visitor.Reset()
	if visitor.HasErrors() {
		t.Error("Expected no errors after reset")
	}
}

// Test cases for CollectorVisitor

func TestCollectorVisitor_Program(t *testing.T) {
	visitor := NewCollectorVisitor()
	createTestProgram().Accept(visitor)

	if len(visitor.FunDecls) != 1 {
		t.Errorf("Expected 1 function declaration, got %d", len(visitor.FunDecls))
	}
	if len(visitor.Structs) != 1 {
		t.Errorf("Expected 1 struct declaration, got %d", len(visitor.Structs))
	}
	if len(visitor.Calls) != 1 {
		t.Errorf("Expected 1 function call, got %d", len(visitor.Calls))
	}
	// i in the init assignment, twice in the loop condition and increment
	// target, once more in the increment value, a and b in the return,
	// and i as the print argument
	if len(visitor.Identifiers) != 7 {
		t.Errorf("Expected 7 identifier expressions, got %d", len(visitor.Identifiers))
	}
	// 0, 10, 1, and the synthetic Nil target of the discarded call
	if len(visitor.Literals) != 4 {
		t.Errorf("Expected 4 literal expressions, got %d", len(visitor.Literals))
	}
}

func TestCollectorVisitor_NestedCalls(t *testing.T) {
	expr := &FunCallExpr{
		Name: "max",
		Args: []Expr{
			&FunCallExpr{Name: "abs", Args: []Expr{createIdent("x")}},
			createNumberLiteral("2", 2),
		},
	}

	visitor := NewCollectorVisitor()
	expr.Accept(visitor)

	if len(visitor.Calls) != 2 {
		t.Errorf("Expected 2 function calls, got %d", len(visitor.Calls))
	}
	if len(visitor.Identifiers) != 1 {
		t.Errorf("Expected 1 identifier, got %d", len(visitor.Identifiers))
	}
	if len(visitor.Literals) != 1 {
		t.Errorf("Expected 1 literal, got %d", len(visitor.Literals))
	}

	if visitor.Calls[0].Name != "max" || visitor.Calls[1].Name != "abs" {
		t.Errorf("Expected calls collected outside-in, got %s then %s",
			visitor.Calls[0].Name, visitor.Calls[1].Name)
	}
}

func TestCollectorVisitor_Reset(t *testing.T) {
	visitor := NewCollectorVisitor()
	createTestProgram().Accept(visitor)

	if len(visitor.Identifiers) == 0 {
		t.Fatal("Expected identifiers before reset")
	}

	visitor.Reset()

	if len(visitor.FunDecls) != 0 || len(visitor.Structs) != 0 ||
		len(visitor.Identifiers) != 0 || len(visitor.Literals) != 0 ||
		len(visitor.Calls) != 0 {
		t.Error("Expected all collections to be empty after reset")
	}
}

// Test cases for utility functions

func TestValidateAST(t *testing.T) {
	valid := createTestProgram()
	if errs := ValidateAST(valid); len(errs) != 0 {
		t.Errorf("Expected no errors for valid program, got: %v", errs)
	}

	invalid := &Program{
		Stmts: []Stmt{
			&WhileStmt{Body: &BlockStmt{IsScope: true}},
		},
	}
	if errs := ValidateAST(invalid); len(errs) == 0 {
		t.Error("Expected errors for invalid program, got none")
	}

	// One error per defective statement, nested or not
	scattered := &Program{
		Stmts: []Stmt{
			&FunDeclStmt{
				Name: Identifier{Name: "f"},
				Body: &BlockStmt{
					IsScope: true,
					Stmts: []Stmt{
						&WhileStmt{Body: &BlockStmt{IsScope: true}},
						&AssignmentStmt{Target: createIdent("x")},
					},
				},
			},
			&ReturnStmt{Value: &BinaryOpExpr{Op: OpAdd}},
		},
	}
	if errs := ValidateAST(scattered); len(errs) != 3 {
		t.Errorf("Expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestASTToString(t *testing.T) {
	result := ASTToString(createTestProgram())

	if result == "" {
		t.Fatal("Expected non-empty dump")
	}
	if !strings.Contains(result, "Program:") {
		t.Errorf("Expected dump to start with program header, got:\n%s", result)
	}

	// The dump is deterministic
	if again := ASTToString(createTestProgram()); again != result {
		t.Error("Expected identical dumps for identical trees")
	}
}

func TestCollectNodes(t *testing.T) {
	collector := CollectNodes(createTestProgram())

	if collector == nil {
		t.Fatal("Expected collector, got nil")
	}
	if len(collector.FunDecls) != 1 || len(collector.Structs) != 1 {
		t.Errorf("Expected 1 function and 1 struct, got %d and %d",
			len(collector.FunDecls), len(collector.Structs))
	}
}

func TestVisitor_NilSafety(t *testing.T) {
	visitor := &BaseVisitor{}

	nodes := []Node{
		&Program{Stmts: []Stmt{nil}},
		&BlockStmt{Stmts: []Stmt{nil}, IsScope: true},
		&AssignmentStmt{},
		&WhileStmt{},
		&IfStmt{},
		&FunDeclStmt{Name: Identifier{Name: "f"}},
		&ReturnStmt{},
		&ListExpr{Elements: []Expr{nil}},
		&BinaryOpExpr{Op: OpAdd},
		&UnaryOpExpr{Op: OpNot},
		&FunCallExpr{Name: "f", Args: []Expr{nil}},
		&DotExpr{Target: Identifier{Name: "p"}},
	}

	for _, node := range nodes {
		// Must not panic on missing children
		node.Accept(visitor)
	}
}

// Benchmark tests

func BenchmarkStringVisitor_Program(b *testing.B) {
	program := createTestProgram()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor := NewStringVisitor()
		program.Accept(visitor)
		_ = visitor.String()
	}
}

func BenchmarkValidationVisitor_Program(b *testing.B) {
	program := createTestProgram()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor := NewValidationVisitor()
		program.Accept(visitor)
		_ = visitor.HasErrors()
	}
}

func BenchmarkCollectorVisitor_Program(b *testing.B) {
	program := createTestProgram()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor := NewCollectorVisitor()
		program.Accept(visitor)
	}
}
