package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/zostay/go-httpheader/header/field"
	"github.com/zostay/go-httpheader/status"
)

// DefaultVersion is the protocol version reported by a Header that was not
// given one.
const DefaultVersion = "1.1"

var (
	// ErrIndexOutOfRange when an attempt is made to access a header field index
	// that is too large or to small.
	ErrIndexOutOfRange = errors.New("header field index is out of range")

	// ErrNoSuchField is returned by Header methods when the operation being
	// performed failed because the field requested does not exist.
	ErrNoSuchField = errors.New("no such header field")
)

// Header is an ordered collection of header fields plus the protocol version
// and status code of the message they belong to. The zero value is an empty
// header for HTTP/1.1 with status 200 OK, written with CRLF line breaks.
//
// A Header owns its fields. The fields returned by its accessors must not be
// shared with another Header; use Clone to copy a header.
type Header struct {
	lbr     Break
	version string
	status  status.Code
	line    string
	fields  []*field.Field
}

// New returns an empty header.
func New() *Header {
	return &Header{
		lbr:     CRLF,
		version: DefaultVersion,
		status:  status.OK,
	}
}

// NewWithNumber returns a header holding exactly one number field.
func NewWithNumber(id field.ID, n int64) *Header {
	h := New()
	h.AppendNumber(id, n)
	return h
}

// NewWithBoolean returns a header holding exactly one boolean field.
func NewWithBoolean(id field.ID, b bool) *Header {
	h := New()
	h.AppendBoolean(id, b)
	return h
}

// NewWithText returns a header holding exactly one text field.
func NewWithText(id field.ID, s string) *Header {
	h := New()
	h.AppendText(id, s)
	return h
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	c := *h
	c.fields = make([]*field.Field, len(h.fields))
	for i, f := range h.fields {
		fc := *f
		c.fields[i] = &fc
	}
	return &c
}

// Break returns the line break written after each header field.
func (h *Header) Break() Break {
	if h.lbr == "" {
		return CRLF
	}
	return h.lbr
}

// SetBreak changes the line break to use with this header.
func (h *Header) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Version returns the protocol version, e.g., "1.1".
func (h *Header) Version() string {
	if h.version == "" {
		return DefaultVersion
	}
	return h.version
}

// SetVersion changes the protocol version.
func (h *Header) SetVersion(v string) {
	h.version = v
}

// Status returns the status code recorded with the header.
func (h *Header) Status() status.Code {
	if h.status == 0 {
		return status.OK
	}
	return h.status
}

// SetStatus changes the status code recorded with the header.
func (h *Header) SetStatus(c status.Code) {
	h.status = c
}

// StatusLine returns the status line as it was found by Parse or, if there was
// none, one built from the version and status.
func (h *Header) StatusLine() string {
	if h.line != "" {
		return h.line
	}
	return "HTTP/" + h.Version() + " " + h.Status().Line()
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if n is out of range.
func (h *Header) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// Get returns the first field with the given ID or nil if there is none.
func (h *Header) Get(id field.ID) *field.Field {
	for _, f := range h.fields {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

// GetAll returns every field with the given ID in header order.
func (h *Header) GetAll(id field.ID) []*field.Field {
	fs := make([]*field.Field, 0, 1)
	for _, f := range h.fields {
		if f.ID() == id {
			fs = append(fs, f)
		}
	}
	return fs
}

// ListFields returns all the fields in the header.
func (h *Header) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// GetTime returns the value of the first field with the given ID as a time.
// Number fields are read as Unix seconds and text fields are parsed with
// ParseTimeLenient. It returns ErrNoSuchField if the field is not set and an
// error wrapping ErrMalformedDate if the value is not a time.
func (h *Header) GetTime(id field.ID) (time.Time, error) {
	f := h.Get(id)
	if f == nil {
		return time.Time{}, ErrNoSuchField
	}

	switch f.Kind() {
	case field.Number:
		n, _ := f.Int()
		return time.Unix(n, 0).UTC(), nil
	case field.Text:
		s, _ := f.Text()
		return ParseTimeLenient(s)
	}

	return time.Time{}, fmt.Errorf("%w: %s holds a %s", ErrMalformedDate, f.Name(), f.Kind())
}

// Append places the field in front of all the fields already in the header.
func (h *Header) Append(f *field.Field) {
	h.fields = append(h.fields, nil)
	copy(h.fields[1:], h.fields)
	h.fields[0] = f
}

// AppendNumber adds a number field to the front of the header.
func (h *Header) AppendNumber(id field.ID, n int64) {
	h.Append(field.NewNumber(id, n))
}

// AppendBoolean adds a boolean field to the front of the header.
func (h *Header) AppendBoolean(id field.ID, b bool) {
	h.Append(field.NewBoolean(id, b))
}

// AppendText adds a text field to the front of the header.
func (h *Header) AppendText(id field.ID, s string) {
	h.Append(field.NewText(id, s))
}

// AppendNamed resolves the name with field.Lookup and adds a text field to the
// front of the header. It fails with field.ErrInvalidField, leaving the header
// unchanged, if the name is not registered.
func (h *Header) AppendNamed(name, s string) error {
	f, err := field.NewNamed(name, s)
	if err != nil {
		return err
	}

	h.Append(f)
	return nil
}

// DeleteField removes the nth field from the header. Fails with an error if the
// given index is out of range.
func (h *Header) DeleteField(n int) error {
	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields[len(h.fields)-1] = nil
	h.fields = h.fields[:len(h.fields)-1]

	return nil
}

// ClearFields removes all fields from the header.
func (h *Header) ClearFields() {
	h.fields = h.fields[:0]
}

// render returns the wire form of the field. A Date held as a number is
// written as an HTTP date so the header can be parsed again. An HTTP date has a
// four digit year, so a time outside years 0 through 9999 is written as the
// plain number of seconds instead, which Parse also reads back.
func render(f *field.Field) string {
	if f.ID() == field.Date {
		if n, isNum := f.Int(); isNum {
			t := time.Unix(n, 0).UTC()
			if t.Year() < 0 || t.Year() > 9999 {
				return f.String()
			}
			return f.Name() + ": " + FormatTime(t)
		}
	}
	return f.String()
}

// WriteTo writes each field in header order, each followed by the header's
// line break. No blank line is written after the last field.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	lbr := h.Break().Bytes()

	var total int64
	for _, f := range h.fields {
		n, err := io.WriteString(w, render(f))
		total += int64(n)
		if err != nil {
			return total, err
		}

		n, err = w.Write(lbr)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Bytes returns the header as a slice of bytes.
func (h *Header) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = h.WriteTo(&buf)
	return buf.Bytes()
}

// String returns the header as a string.
func (h *Header) String() string {
	return string(h.Bytes())
}
