// Package connstr recognises, compares and masks database connection strings.
//
// The recognition is a heuristic over surface syntax, not a parser: a value
// validates when it looks like one of the known families, carries a key/value
// or URI marker and is not trivially short. All functions are pure and safe
// for concurrent use.
package connstr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the shortest trimmed value, in characters, that can validate.
const MinLength = 10

const mask = "***"

// Validate reports whether s looks like a connection string.
func Validate(s string) bool {
	trimmed := Trim(s)
	if trimmed == "" {
		return false
	}
	if !hasMarker(trimmed) || utf8.RuneCountInString(trimmed) < MinLength {
		return false
	}
	return matchShape(trimmed) != FamilyNone
}

// Detect returns the family of the first shape s matches, or FamilyNone.
// Unlike Validate it ignores the marker and length floor.
func Detect(s string) Family {
	return matchShape(Trim(s))
}

// Compare reports whether a and b are identical once surrounding whitespace
// is trimmed. Empty input never matches, not even another empty input.
func Compare(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Trim(a) == Trim(b)
}

// Sanitize replaces the value of every password, pwd, token, secret or key
// assignment with *** and leaves the rest of s untouched.
func Sanitize(s string) string {
	return sensitiveRe.ReplaceAllString(s, "${1}="+mask)
}

// Trim strips leading and trailing whitespace, counting no-break spaces,
// line separators and a byte order mark as whitespace.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func hasMarker(s string) bool {
	return strings.Contains(s, "=") || strings.Contains(s, "://")
}

func matchShape(s string) Family {
	if s == "" {
		return FamilyNone
	}
	for _, sh := range shapes {
		if sh.re.MatchString(s) {
			return sh.family
		}
	}
	return FamilyNone
}
