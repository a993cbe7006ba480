// File: entry_test.go
// Title: Log Entry Tests
// Description: Tests for log entry structure and field manipulation functions.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with entry tests

package log

import (
	"errors"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	level := LevelInfo
	message := "test message"

	entry := NewEntry(level, message)

	if entry.Level != level {
		t.Errorf("NewEntry() level = %v, want %v", entry.Level, level)
	}

	if entry.Message != message {
		t.Errorf("NewEntry() message = %v, want %v", entry.Message, message)
	}

	if entry.Timestamp.IsZero() {
		t.Error("NewEntry() should set timestamp")
	}

	if entry.Fields == nil {
		t.Error("NewEntry() should initialize fields")
	}
}

func TestFieldConstructors(t *testing.T) {
	err := errors.New("boom")
	now := time.Now()
	_ = now

	tests := []struct {
		name   string
		fields Fields
		key    string
		want   interface{}
	}{
		{"Field", Field("source", "main.es"), "source", "main.es"},
		{"Err", Err(err), "error", err},
		{"Int", Int("count", 7), "count", 7},
		{"Int64", Int64("big", int64(42)), "big", int64(42)},
		{"String", String("name", "esta"), "name", "esta"},
		{"Bool", Bool("ok", true), "ok", true},
		{"Any", Any("value", 3.14), "value", 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fields[tt.key]; got != tt.want {
				t.Errorf("%s() field = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDurationField(t *testing.T) {
	d := 150 * time.Millisecond
	fields := Duration("elapsed", d)

	if fields["elapsed"] != d {
		t.Errorf("Duration() field = %v, want %v", fields["elapsed"], d)
	}
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"a": 1, "b": 2}
	other := Fields{"b": 3, "c": 4}

	merged := base.Merge(other)

	if merged["a"] != 1 {
		t.Errorf("Merge() a = %v, want 1", merged["a"])
	}

	if merged["b"] != 3 {
		t.Errorf("Merge() should let other win, b = %v, want 3", merged["b"])
	}

	if merged["c"] != 4 {
		t.Errorf("Merge() c = %v, want 4", merged["c"])
	}

	// Original is untouched
	if base["b"] != 2 {
		t.Error("Merge() should not modify the receiver")
	}
}

func TestFieldsWith(t *testing.T) {
	var fields Fields
	fields = fields.With("key", "value")

	if fields["key"] != "value" {
		t.Errorf("With() on nil Fields = %v, want value", fields["key"])
	}

	fields = fields.With("other", 2)
	if len(fields) != 2 {
		t.Errorf("With() length = %d, want 2", len(fields))
	}
}

func TestFieldsClone(t *testing.T) {
	original := Fields{"a": 1}
	clone := original.Clone()

	clone["a"] = 2
	if original["a"] != 1 {
		t.Error("Clone() should be independent of the original")
	}

	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone() of nil Fields should be nil")
	}
}

func TestEntryBuilders(t *testing.T) {
	err := errors.New("boom")
	entry := NewEntry(LevelWarn, "something happened").
		WithField("source", "main.es").
		WithFields(Fields{"line": 3}).
		WithError(err).
		WithDuration(time.Second).
		WithRequestID("req-1").
		WithLogger("frontend")

	if entry.Fields["source"] != "main.es" {
		t.Error("WithField() should set the field")
	}

	if entry.Fields["line"] != 3 {
		t.Error("WithFields() should set the fields")
	}

	if entry.Error != err {
		t.Error("WithError() should set the error")
	}

	if entry.Duration != time.Second {
		t.Error("WithDuration() should set the duration")
	}

	if entry.RequestID != "req-1" {
		t.Error("WithRequestID() should set the request ID")
	}

	if entry.Logger != "frontend" {
		t.Error("WithLogger() should set the logger name")
	}
}

func TestEntryWithCaller(t *testing.T) {
	entry := NewEntry(LevelDebug, "msg").WithCaller("doThing", "thing.go", 42)

	if entry.Caller == nil {
		t.Fatal("WithCaller() should set caller info")
	}

	if entry.Caller.Function != "doThing" || entry.Caller.File != "thing.go" || entry.Caller.Line != 42 {
		t.Errorf("WithCaller() = %+v, want doThing/thing.go/42", entry.Caller)
	}
}

func TestEntryClone(t *testing.T) {
	entry := NewEntry(LevelInfo, "original").
		WithField("key", "value").
		WithRequestID("req-9").
		WithCaller("fn", "file.go", 1)

	clone := entry.Clone()

	if clone == entry {
		t.Error("Clone() should return a new entry")
	}

	if clone.Message != entry.Message || clone.RequestID != entry.RequestID {
		t.Error("Clone() should copy scalar fields")
	}

	clone.Fields["key"] = "changed"
	if entry.Fields["key"] != "value" {
		t.Error("Clone() fields should be independent")
	}

	clone.Caller.Line = 99
	if entry.Caller.Line != 1 {
		t.Error("Clone() caller should be independent")
	}

	var nilEntry *Entry
	if nilEntry.Clone() != nil {
		t.Error("Clone() of nil entry should be nil")
	}
}
