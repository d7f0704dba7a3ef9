package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in the theme's box. A nil border uses the theme colour.
func Panel(border lipgloss.TerminalColor, lines ...string) string {
	if border == nil {
		border = current.BorderColor
	}
	return panelStyle(border).Render(strings.Join(lines, "\n"))
}

func panelStyle(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(border).
		Padding(0, 1)
}

// Truncate shortens s to at most width characters, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width < 4 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
