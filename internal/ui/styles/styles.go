// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to keep the
// selector, the table output and the prompts visually consistent.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the UI
var (
	// Accent is the highlight color for selected/active items (green)
	Accent lipgloss.TerminalColor = lipgloss.Color("78")

	// Match is the color for fuzzy-matched characters (pink)
	Match lipgloss.TerminalColor = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for dimmed/secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal lipgloss.TerminalColor = lipgloss.Color("252")
)

// Common styles
var (
	// AccentStyle marks the item under the cursor
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// MatchStyle highlights fuzzy-matched characters
	MatchStyle = lipgloss.NewStyle().
			Foreground(Match).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// CursorStyle colors the selection cursor and input prompt
	CursorStyle = lipgloss.NewStyle().Foreground(Accent)
)
