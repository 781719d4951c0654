// Package numeric validates free-text numeric input the way the quotation
// form fields need it: a permissive keystroke filter, an in-progress parser
// that tolerates "" and ".", advisory range checks, and a lenient coercion
// to float64.
package numeric

import (
	"errors"
	"strconv"
	"strings"
)

// Options constrains a numeric field. Min/Max are inclusive bounds; nil means
// unbounded on that side.
type Options struct {
	Min           *float64
	Max           *float64
	AllowNegative bool
	AllowDecimal  bool
}

// Parse checks whether raw is a valid complete or in-progress numeric entry:
// an optional leading sign, digits, and at most one decimal point. The empty
// string and a bare "." are accepted so a value like "0.5" can be typed one
// character at a time. The second return is false when the text must be
// rejected (the caller keeps its previous value).
func Parse(raw string) (string, bool) {
	s := raw
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return "", false
			}
		default:
			return "", false
		}
	}
	return raw, true
}

// FilterKey reports whether a single typed character may be appended to
// current. This runs before Parse so the field never holds an intermediate
// invalid state.
func FilterKey(current string, key rune, opts Options) bool {
	switch {
	case key >= '0' && key <= '9':
		return true
	case key == '.':
		return opts.AllowDecimal && !strings.Contains(current, ".")
	case key == '-':
		return opts.AllowNegative && current == ""
	default:
		return false
	}
}

// Validate applies advisory range and sign checks to an accepted value. A
// non-nil error carries the message to display; the value is still stored
// either way. Blank and in-progress values pass.
func Validate(raw string, opts Options) error {
	if raw == "" || raw == "." || raw == "-" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	if n < 0 && !opts.AllowNegative {
		return errors.New("negative values are not allowed")
	}
	if opts.Min != nil && n < *opts.Min {
		return errors.New("value is below the minimum of " + strconv.FormatFloat(*opts.Min, 'f', -1, 64))
	}
	if opts.Max != nil && n > *opts.Max {
		return errors.New("value exceeds the maximum of " + strconv.FormatFloat(*opts.Max, 'f', -1, 64))
	}
	return nil
}

// ToNumber coerces a raw field value to float64. Blank or unparseable input
// becomes 0.
func ToNumber(raw string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return n
}
