package field

import (
	"fmt"
)

// isDelim reports whether c ends the name token of a header line.
func isDelim(c byte) bool {
	return c == ':' || c == ' '
}

// ParseLine splits a single raw header line into a field ID and a value.
//
// The name token runs up to the first colon or space and is canonicalized with
// the same rule as Canonicalize. After that delimiter, any run of colons and
// spaces is skipped and the rest of the line is the value. The value is not
// trimmed on the right, so a trailing CR is kept if the caller left one.
//
// A line with no delimiter is treated as a name with an empty value.
//
// If the name is not registered, the returned ID is Unknown, the value is
// still returned, and the error is ErrUnknownField. The caller decides whether
// to discard the value.
func ParseLine(raw string) (ID, string, error) {
	ix := 0
	for ix < len(raw) && !isDelim(raw[ix]) {
		ix++
	}

	name := Canonicalize(raw[:ix])

	for ix < len(raw) && isDelim(raw[ix]) {
		ix++
	}

	value := raw[ix:]

	id, found := byName[name]
	if !found {
		return Unknown, value, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return id, value, nil
}

// Parse parses a single raw header line with ParseLine and returns it as a
// text field. It returns nil and ErrUnknownField if the name is not
// registered.
func Parse(raw string) (*Field, error) {
	id, value, err := ParseLine(raw)
	if err != nil {
		return nil, err
	}

	return NewText(id, value), nil
}
