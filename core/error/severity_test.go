// File: severity_test.go
// Title: Severity Tests
// Description: Tests for error severity functionality including string
//              representation, alerting rules, and automatic severity
//              determination from error codes.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity tests

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"}, // Invalid severity
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityLevel(t *testing.T) {
	tests := []struct {
		severity Severity
		want     int
	}{
		{SeverityLow, 0},
		{SeverityMedium, 1},
		{SeverityHigh, 2},
		{SeverityCritical, 3},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			if got := tt.severity.Level(); got != tt.want {
				t.Errorf("Severity.Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	tests := []struct {
		severity    Severity
		shouldAlert bool
	}{
		{SeverityLow, false},
		{SeverityMedium, false},
		{SeverityHigh, true},
		{SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			if got := tt.severity.ShouldAlert(); got != tt.shouldAlert {
				t.Errorf("Severity.ShouldAlert() = %v, want %v", got, tt.shouldAlert)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if SeverityLow >= SeverityMedium {
		t.Error("SeverityLow should be less than SeverityMedium")
	}

	if SeverityMedium >= SeverityHigh {
		t.Error("SeverityMedium should be less than SeverityHigh")
	}

	if SeverityHigh >= SeverityCritical {
		t.Error("SeverityHigh should be less than SeverityCritical")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		severity Severity
	}{
		// High severity
		{"internal", CodeInternal, SeverityHigh},
		{"malformed tree", CodeMalformedTree, SeverityHigh},
		{"watch error", CodeWatchError, SeverityHigh},

		// Medium severity
		{"io error", CodeIOError, SeverityMedium},
		{"config error", CodeConfigError, SeverityMedium},
		{"missing config", CodeMissingConfig, SeverityMedium},
		{"invalid config", CodeInvalidConfig, SeverityMedium},
		{"source too large", CodeSourceTooLarge, SeverityMedium},

		// Low severity
		{"invalid input", CodeInvalidInput, SeverityLow},
		{"not found", CodeNotFound, SeverityLow},
		{"validation failed", CodeValidationFailed, SeverityLow},
		{"lex error", CodeLexError, SeverityLow},
		{"syntax error", CodeSyntaxError, SeverityLow},
		{"literal overflow", CodeLiteralOverflow, SeverityLow},

		// Default case
		{"unknown code", Code("UNKNOWN_CODE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.severity {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.severity)
			}
		})
	}
}
