// Package report encodes a comparison as JSON for scripts.
// Nothing is written to disk; the caller owns the writer.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/connmatch/internal/connstr"
	"github.com/Makepad-fr/connmatch/internal/model"
)

type Field struct {
	Value    string `json:"value"`
	Validity string `json:"validity"`
	Family   string `json:"family,omitempty"`
	Length   int    `json:"length"`
}

type Report struct {
	State    string `json:"state"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Left     Field  `json:"left"`
	Right    Field  `json:"right"`
}

// New builds a report. Values are sanitized unless reveal is set.
func New(c model.Comparison, reveal bool) Report {
	return Report{
		State:    c.State.String(),
		Title:    c.Title(),
		Subtitle: c.Subtitle(),
		Left:     newField(c.Left, reveal),
		Right:    newField(c.Right, reveal),
	}
}

func newField(f model.Field, reveal bool) Field {
	v := f.Value
	if !reveal {
		v = connstr.Sanitize(v)
	}
	return Field{
		Value:    v,
		Validity: f.Validity.String(),
		Family:   string(f.Family),
		Length:   f.Length,
	}
}

// Write encodes the report for c as indented JSON followed by a newline.
func Write(w io.Writer, c model.Comparison, reveal bool) error {
	return writeJSON(w, New(c, reveal))
}

// WriteField encodes a single field, as printed by validate.
func WriteField(w io.Writer, f model.Field, reveal bool) error {
	return writeJSON(w, newField(f, reveal))
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
