package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders, selection
	SuccessColor = lipgloss.Color("#43BF6D") // Green - directories
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - loading spinner
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinContentWidth = 40  // Narrowest layout drawn
	MaxContentWidth = 120 // Widest layout drawn
)

// Shared styles
var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(1)

	HeaderSubtitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(1)

	ColumnTitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	FileStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MetaStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			PaddingLeft(1)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				PaddingLeft(1)
)

// SelectionMarker prefixes the selected row. Unselected rows get the same
// width of blanks.
const SelectionMarker = "➤ "

// ClampWidth limits a terminal width to the drawable range.
func ClampWidth(width int) int {
	if width < MinContentWidth {
		return MinContentWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// Fit truncates s to width cells, adding an ellipsis when cut, and pads it
// with spaces to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// RenderHorizontalDivider creates a horizontal line of the specified width.
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(MutedColor).
		Render(strings.Repeat(char, width))
}
