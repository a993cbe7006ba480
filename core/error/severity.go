// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. A rejected source file is an
//              everyday event for a language front end, while a broken
//              configuration or an internal fault is not; severity keeps
//              the two apart.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected, user-facing error
	// Examples: syntax errors, literal overflow, invalid command input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects tooling functionality
	// Examples: unreadable source files, malformed configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error in the toolchain itself
	// Examples: malformed trees produced by the parser, watcher failures
	SeverityHigh

	// SeverityCritical indicates an error that makes the toolchain unusable
	// Examples: unrecoverable internal state, resource exhaustion
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeInternal, CodeMalformedTree, CodeWatchError:
		return SeverityHigh

	// Medium severity errors
	case CodeIOError, CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeSourceTooLarge:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeLexError, CodeSyntaxError, CodeLiteralOverflow:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
