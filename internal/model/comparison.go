package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/Makepad-fr/connmatch/internal/connstr"
)

// Validity is the per-field verdict. Unknown means the field is empty.
type Validity int

const (
	Unknown Validity = iota
	Invalid
	Valid
)

func (v Validity) String() string {
	switch v {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	default:
		return "unknown"
	}
}

// State is the outcome of comparing both fields.
type State int

const (
	StateWaiting State = iota
	StateInvalid
	StateMatch
	StateMismatch
)

func (s State) String() string {
	switch s {
	case StateInvalid:
		return "invalid"
	case StateMatch:
		return "match"
	case StateMismatch:
		return "mismatch"
	default:
		return "waiting"
	}
}

// Field is one side of a comparison.
type Field struct {
	Value    string
	Validity Validity
	Family   connstr.Family
	Length   int // in characters
}

// Comparison is recomputed from scratch on every input change.
type Comparison struct {
	Left, Right Field
	State       State
}

// NewField derives the validity and shape of a raw value.
func NewField(value string) Field {
	f := Field{
		Value:  value,
		Length: utf8.RuneCountInString(value),
	}
	if value == "" {
		return f
	}
	f.Family = connstr.Detect(value)
	if connstr.Validate(value) {
		f.Validity = Valid
	} else {
		f.Validity = Invalid
	}
	return f
}

// Evaluate builds the comparison of two raw inputs.
func Evaluate(left, right string) Comparison {
	c := Comparison{Left: NewField(left), Right: NewField(right)}
	switch {
	case left == "" || right == "":
		c.State = StateWaiting
	case c.Left.Validity != Valid || c.Right.Validity != Valid:
		c.State = StateInvalid
	case connstr.Compare(left, right):
		c.State = StateMatch
	default:
		c.State = StateMismatch
	}
	return c
}

// Visible reports whether there is anything to show yet.
func (c Comparison) Visible() bool {
	return c.Left.Value != "" || c.Right.Value != ""
}

func (c Comparison) Title() string {
	switch c.State {
	case StateInvalid:
		return "Invalid connection string format"
	case StateMatch:
		return "Perfect Match!"
	case StateMismatch:
		return "No Match"
	default:
		return "Waiting for both connection strings"
	}
}

func (c Comparison) Subtitle() string {
	switch c.State {
	case StateInvalid:
		return "Please check that both strings are valid connection strings"
	case StateMatch:
		return "Both connection strings are identical and valid"
	case StateMismatch:
		return fmt.Sprintf("Strings differ (%d vs %d characters)", c.Left.Length, c.Right.Length)
	default:
		return "Paste connection strings in both fields to compare"
	}
}
