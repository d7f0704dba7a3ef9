package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and the panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymValid, SymInvalid, SymWaiting string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),

		SymValid: "✔", SymInvalid: "✖", SymWaiting: "⚠",
	}
}

func neon() Theme {
	return Theme{
		Name:    "neon",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("13"),

		SymValid: "✔", SymInvalid: "✖", SymWaiting: "◌",
	}
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,

		Border:      lipgloss.ASCIIBorder(),
		BorderColor: lipgloss.NoColor{},

		SymValid: "ok", SymInvalid: "x", SymWaiting: "..",
	}
}

// SetTheme switches the theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
		DisableColor()
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
