package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for the verification report and scan output.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	MatchedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ModifiedStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MissingStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ExtraStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	UnreadableStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
