package field

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidField is returned when a field is constructed from a name that
	// does not resolve to a registered field.
	ErrInvalidField = errors.New("invalid header field name")

	// ErrUnknownField is returned by ParseLine when the line is well-formed,
	// but its field name is not in the registry. The value is still returned
	// so the caller may decide what to do with it.
	ErrUnknownField = errors.New("unknown header field")
)

// Kind is the type of value held by a Field.
type Kind int

// The kinds of value a Field may hold.
const (
	Text Kind = iota
	Number
	Boolean
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Text:
		return "text"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Field is a single HTTP header field: a registered field ID and a typed
// value. Only the member matching the Kind is meaningful.
type Field struct {
	id   ID
	kind Kind
	num  int64
	flag bool
	text string
}

// NewNumber returns a field holding an integer value.
func NewNumber(id ID, n int64) *Field {
	return &Field{id: id, kind: Number, num: n}
}

// NewBoolean returns a field holding a boolean value.
func NewBoolean(id ID, b bool) *Field {
	return &Field{id: id, kind: Boolean, flag: b}
}

// NewText returns a field holding a text value.
func NewText(id ID, s string) *Field {
	return &Field{id: id, kind: Text, text: s}
}

// NewNamed resolves the name with Lookup and returns a text field for it. It
// fails with ErrInvalidField if the name is not registered.
func NewNamed(name, s string) (*Field, error) {
	id := Lookup(name)
	if id == Unknown {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, name)
	}
	return NewText(id, s), nil
}

// ID returns the field's ID.
func (f *Field) ID() ID {
	return f.id
}

// Kind returns the kind of value the field holds.
func (f *Field) Kind() Kind {
	return f.kind
}

// Name returns the canonical name of the field.
func (f *Field) Name() string {
	return Name(f.id)
}

// Int returns the integer value and true if this is a Number field.
func (f *Field) Int() (int64, bool) {
	return f.num, f.kind == Number
}

// Bool returns the boolean value and true if this is a Boolean field.
func (f *Field) Bool() (bool, bool) {
	return f.flag, f.kind == Boolean
}

// Text returns the text value and true if this is a Text field.
func (f *Field) Text() (string, bool) {
	return f.text, f.kind == Text
}

// Value returns the value formatted for the wire. Numbers are written in
// decimal and booleans as "true" or "false". Text is returned as-is.
func (f *Field) Value() string {
	switch f.kind {
	case Number:
		return strconv.FormatInt(f.num, 10)
	case Boolean:
		return strconv.FormatBool(f.flag)
	}
	return f.text
}

// String returns the complete header field as a string, without a line
// break.
func (f *Field) String() string {
	return f.Name() + ": " + f.Value()
}

// Bytes returns the complete header field as a slice of bytes.
func (f *Field) Bytes() []byte {
	return []byte(f.String())
}
