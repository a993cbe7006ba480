// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level functionality including string representation,
//              parsing, priority, and filtering logic.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with level tests

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelFatal, "FTL"},
		{Level(999), "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.ShortString(); got != tt.want {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"trace at trace", LevelTrace, LevelTrace, true},
		{"trace at debug", LevelTrace, LevelDebug, false},
		{"debug at info", LevelDebug, LevelInfo, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"warn at info", LevelWarn, LevelInfo, true},
		{"error at warn", LevelError, LevelWarn, true},
		{"fatal at error", LevelFatal, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
				t.Errorf("Level.ShouldLog(%v) = %v, want %v", tt.minLevel, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", "trace", LevelTrace, false},
		{"trace short", "trc", LevelTrace, false},
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"info long", "information", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"warning", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"fatal", "fatal", LevelFatal, false},
		{"uppercase", "INFO", LevelInfo, false},
		{"padded", "  debug  ", LevelDebug, false},
		{"invalid", "verbose", LevelInfo, true},
		{"empty", "", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelErrorMessage(t *testing.T) {
	_, err := ParseLevel("loud")

	if err == nil {
		t.Fatal("ParseLevel() should fail for unknown levels")
	}

	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("ParseLevel() error type = %T, want *ParseError", err)
	}

	if parseErr.Input != "loud" {
		t.Errorf("ParseError.Input = %q, want %q", parseErr.Input, "loud")
	}

	if parseErr.Type != "level" {
		t.Errorf("ParseError.Type = %q, want %q", parseErr.Type, "level")
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()

	if len(levels) != 6 {
		t.Errorf("AllLevels() length = %d, want 6", len(levels))
	}

	// Levels are in increasing priority order
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("AllLevels() not ordered at index %d", i)
		}
	}
}

func TestDefaultLevels(t *testing.T) {
	if DefaultLevel() != LevelInfo {
		t.Errorf("DefaultLevel() = %v, want %v", DefaultLevel(), LevelInfo)
	}

	if DevelopmentLevel() != LevelDebug {
		t.Errorf("DevelopmentLevel() = %v, want %v", DevelopmentLevel(), LevelDebug)
	}
}
