// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the esta toolchain. The codes cover
//              source analysis (lexing, parsing, validation) as well as the
//              surrounding tooling (configuration, file access, watching).
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the esta toolchain
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source analysis
	CodeLexError        Code = "LEX_ERROR"
	CodeSyntaxError     Code = "SYNTAX_ERROR"
	CodeLiteralOverflow Code = "LITERAL_OVERFLOW"
	CodeSourceTooLarge  Code = "SOURCE_TOO_LARGE"

	// Tree validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeMalformedTree    Code = "MALFORMED_TREE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Files and watching
	CodeIOError    Code = "IO_ERROR"
	CodeWatchError Code = "WATCH_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexError, CodeSyntaxError, CodeLiteralOverflow, CodeSourceTooLarge,
		CodeValidationFailed, CodeMalformedTree,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOError, CodeWatchError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexError, CodeSyntaxError, CodeLiteralOverflow, CodeSourceTooLarge:
		return "syntax"
	case CodeValidationFailed, CodeMalformedTree:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeWatchError:
		return "io"
	default:
		return "generic"
	}
}
