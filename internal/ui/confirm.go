package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm draws a warning box with title and notes on out, then asks a yes/no
// question and reads one line from in. Only "y" or "yes" (any case) confirm;
// anything else, including end of input, declines.
func Confirm(in io.Reader, out io.Writer, width int, title string, notes []string, question string) bool {
	width = ClampWidth(width)

	lines := []string{
		"",
		lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			Render("⚠  " + title),
		"",
	}
	for _, note := range notes {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("• "+note))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	fmt.Fprintln(out, box)
	fmt.Fprint(out, lipgloss.NewStyle().Foreground(WarningColor).Bold(true).Render(question+" [y/N]: "))

	// A read error leaves whatever was typed before it.
	answer, _ := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		fmt.Fprintln(out, MetaStyle.Render("  Cancelled."))
		return false
	}
}
