package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/connmatch/internal/connstr"
	"github.com/Makepad-fr/connmatch/internal/model"
)

const valueWidth = 80

// StateStyle picks the colour a comparison state is drawn with.
func StateStyle(s model.State) lipgloss.Style {
	switch s {
	case model.StateMatch:
		return current.Success
	case model.StateWaiting:
		return current.Pending
	default:
		return current.Error
	}
}

func stateSymbol(s model.State) string {
	switch s {
	case model.StateMatch:
		return current.SymValid
	case model.StateWaiting:
		return current.SymWaiting
	default:
		return current.SymInvalid
	}
}

// Badge renders a field's validity, e.g. "✔ valid (postgresql)".
func Badge(f model.Field) string {
	switch f.Validity {
	case model.Valid:
		label := current.SymValid + " valid"
		if f.Family != connstr.FamilyNone {
			label += " (" + string(f.Family) + ")"
		}
		return current.Success.Render(label)
	case model.Invalid:
		return current.Error.Render(current.SymInvalid + " invalid")
	default:
		return current.Muted.Render("no input")
	}
}

// Display is the text shown for a field value. Secrets are masked unless reveal.
func Display(value string, reveal bool) string {
	v := connstr.Trim(value)
	if !reveal {
		v = connstr.Sanitize(v)
	}
	return Truncate(v, valueWidth)
}

// VerdictLines is the body of the verdict panel.
func VerdictLines(c model.Comparison, reveal bool) []string {
	style := StateStyle(c.State)
	lines := []string{
		style.Bold(true).Render(stateSymbol(c.State) + " " + c.Title()),
		current.Muted.Render(c.Subtitle()),
		"",
	}
	for i, f := range []model.Field{c.Left, c.Right} {
		idx := current.Muted.Render(fmt.Sprintf("%d.", i+1))
		lines = append(lines, fmt.Sprintf("%s %s  %s", idx, Badge(f), current.Muted.Render(fmt.Sprintf("%d chars", f.Length))))
		if f.Value != "" {
			lines = append(lines, "   "+Display(f.Value, reveal))
		}
	}
	return lines
}

// Verdict renders the comparison as a framed panel coloured by its state.
func Verdict(c model.Comparison, reveal bool) string {
	var border lipgloss.TerminalColor
	if _, plain := current.BorderColor.(lipgloss.NoColor); !plain {
		border = StateStyle(c.State).GetForeground()
	}
	return Panel(border, VerdictLines(c, reveal)...)
}
