// Package error provides structured error handling for the esta toolchain.
//
// Package: error
// Title: esta Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, stack traces, and severity
//              levels. It gives every layer of the toolchain, from the lexer
//              up to the command line, one consistent way to build, classify,
//              and inspect errors.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - JSON marshaling for structured logging
//
// Usage:
//   import estaerror "github.com/isgasho/esta/core/error"
//
//   // Create a new error with context
//   err := estaerror.New("source file not readable").
//     WithCode(estaerror.CodeIOError).
//     WithDetail("path", "scripts/init.es")
//
//   // Wrap an existing error with context
//   wrapped := estaerror.Wrap(err, "check failed").
//     WithOperation("check")
//
//   // Check error type and code
//   if estaerror.HasCode(err, estaerror.CodeSyntaxError) {
//     // Handle rejected sources specifically
//   }
package error
