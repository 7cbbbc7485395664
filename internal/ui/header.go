package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is the boxed banner at the top of a screen: a title and one line of
// context such as the current directory.
type Header struct {
	Title    string
	Subtitle string
	Width    int
}

// NewHeader creates a header sized for width.
func NewHeader(title, subtitle string, width int) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Width:    width,
	}
}

// Lines is the number of terminal rows Render produces.
func (h *Header) Lines() int {
	if h.Subtitle == "" {
		return 3
	}
	return 4
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := ClampWidth(h.Width)
	inner := width - 4 // border and padding

	content := HeaderTitleStyle.Render(Fit(h.Title, inner))
	if h.Subtitle != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			HeaderSubtitleStyle.Render(Fit(h.Subtitle, inner)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
