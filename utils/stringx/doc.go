// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the esta
//              toolchain, offering Unicode-safe truncation, padding, and line
//              splitting utilities that extend Go's standard library.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core string utilities

// Package stringx provides extended string operations for the esta toolchain.
//
// Package: stringx
// Title: Extended String Operations for esta
// Description: This package provides essential string utilities that extend
//              the Go standard library with operations the parser, diagnostics,
//              and command layer need. Focus on Unicode safety and simple,
//              predictable behavior.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Overview
//
// The stringx package extends Go's standard strings package with small helpers
// used across the esta front end: emptiness and blankness checks for option
// handling, Unicode-safe truncation for source snippets in error output,
// padding for column-aligned token dumps, and line splitting that normalizes
// the line ending conventions source files arrive with.
//
// Key capabilities include:
//   - Unicode-safe string truncation with ellipsis
//   - Empty and blank string checks
//   - Left and right padding for column-aligned output
//   - Line splitting with normalization of \r\n and \r endings
//   - First non-empty / non-blank selection for configuration fallbacks
//
// Usage Examples
//
// Basic string operations:
//
//	// Safe empty/blank checking
//	if stringx.IsBlank("  \t\n  ") {
//	    fmt.Println("String contains only whitespace")
//	}
//
//	// Unicode-aware truncation
//	long := "Hello, 世界! This is a long string"
//	short := stringx.Truncate(long, 10, "...")
//	// Result: "Hello, 世..."
//
// Formatting token dumps:
//
//	// Align token type names in a dump
//	name := stringx.PadRight(tok.Type.String(), 12, ' ')
//
//	// Right-align line numbers
//	num := stringx.PadLeft(strconv.Itoa(line), 4, ' ')
//
// Working with source text:
//
//	// Split source into lines regardless of platform line endings
//	lines := stringx.SplitLines(source)
//
//	// Pick the first configured value
//	prompt := stringx.FirstNonBlank(cfg.Prompt, defaultPrompt)
//
// Error Handling
//
// All functions are designed to be error-free by handling edge cases gracefully:
//   - Empty strings return sensible defaults
//   - Non-positive lengths are treated as empty results
//   - Invalid UTF-8 is handled safely
//
// Thread Safety
//
// All exported functions are pure and can be called concurrently.
//
// See Also
//
//   - strings: Go standard library string functions
//   - unicode: Unicode character classification
package stringx
