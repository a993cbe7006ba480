package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for terminal output
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

// Shared output styles
var (
	styleBanner = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeading = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	stylePrompt = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleTokenType = lipgloss.NewStyle().
			Foreground(colorAccent).
			Width(14)

	stylePosition = lipgloss.NewStyle().
			Foreground(colorMuted)
)
