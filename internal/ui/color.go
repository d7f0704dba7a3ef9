package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing overrides lipgloss' terminal detection. disable wins.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		DisableColor()
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// DisableColor renders every style as plain text from now on.
func DisableColor() { lipgloss.SetColorProfile(termenv.Ascii) }

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymValid+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymInvalid+" "+msg))
}

func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Muted.Render(msg))
}
