// File: doc.go
// Title: Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed esta programs. Provides visitor
//              patterns and tree inspection utilities.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for esta programs.

This package provides the node definitions, visitor patterns, and utilities
for representing and inspecting parsed esta source as structured data.

The AST enables:
  • Structured representation of statements and expressions
  • Tree dumps for debugging and tooling
  • Static analysis and validation
  • Node collection for program statistics
*/
package ast
