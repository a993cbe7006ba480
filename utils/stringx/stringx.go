// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on Unicode safety and developer
//              ergonomics for the string handling the toolchain needs when
//              rendering source excerpts, padding output, and picking
//              configuration fallbacks.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
// Convenience function that's the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string is not empty and contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified length, adding an ellipsis if truncated.
// This function is Unicode-aware and will not break multi-byte characters.
// If the string is shorter than maxLen, it returns the original string.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	// If the string fits, return as-is
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	// Calculate space needed for ellipsis
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		// If ellipsis is too long, just return truncated string without ellipsis
		return string([]rune(s)[:maxLen])
	}

	// Truncate and add ellipsis
	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// ContainsIgnoreCase returns true if substr is within s, ignoring case.
// This is a case-insensitive version of strings.Contains.
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

// isASCIIRune checks if a rune is ASCII
func isASCIIRune(r rune) bool {
	return r < 128
}

// PadLeft pads the string s to the specified width with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadLeft(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		padCount := width - len(s)

		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}

		copy(result[padCount:], s)

		return string(result)
	}

	// Unicode fallback path
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4) // Pre-allocate for worst-case UTF-8

	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)

	return builder.String()
}

// PadRight pads the string s to the specified width with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadRight(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)

		copy(result, s)

		for i := len(s); i < width; i++ {
			result[i] = byte(pad)
		}

		return string(result)
	}

	// Unicode fallback path
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4) // Pre-allocate for worst-case UTF-8

	builder.WriteString(s)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}

	return builder.String()
}

// SplitLines splits a string into lines, handling different line ending conventions.
// It properly handles \n, \r\n, and \r line endings.
func SplitLines(s string) []string {
	// Normalize line endings to \n
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
// This is useful for providing default values in a chain.
func FirstNonEmpty(strings ...string) string {
	for _, s := range strings {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the provided strings.
// This is useful for providing default values while ignoring whitespace-only strings.
func FirstNonBlank(strings ...string) string {
	for _, s := range strings {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
