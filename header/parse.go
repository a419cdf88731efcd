package header

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zostay/go-httpheader/header/field"
	"github.com/zostay/go-httpheader/status"
)

// MaxLineLength is the longest line Parse will read, not counting the line
// terminator. Parse stops at the first line longer than this.
const MaxLineLength = 512

var (
	// ErrMalformedDate is returned when a Date field does not hold an HTTP
	// date.
	ErrMalformedDate = errors.New("malformed date")

	// ErrMalformedNumber is returned when a numeric field does not hold a
	// base-10 integer.
	ErrMalformedNumber = errors.New("malformed number")
)

// ValueError reports a field value that could not be converted to the type
// its field requires. Err is ErrMalformedDate or ErrMalformedNumber.
type ValueError struct {
	Line  int      // the 1-based line number of the field in the payload
	ID    field.ID // the field being parsed
	Value string   // the raw value
	Err   error
}

// Error returns the error message.
func (e *ValueError) Error() string {
	return fmt.Sprintf("line %d: %s value %q: %v", e.Line, e.ID, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// numberFields and booleanFields are parsed into typed values by Parse.
var (
	numberFields = map[field.ID]struct{}{
		field.ContentLength:       {},
		field.MaxForwards:         {},
		field.Age:                 {},
		field.RetryAfter:          {},
		field.AccessControlMaxAge: {},
	}

	booleanFields = map[field.ID]struct{}{
		field.Expect:                  {},
		field.IfModifiedSince:         {},
		field.IfUnmodifiedSince:       {},
		field.StrictTransportSecurity: {},
		field.XXSSProtection:          {},
	}
)

// ParseOption changes how Parse reads a header block.
type ParseOption func(*parseOpts)

type parseOpts struct {
	lbr       Break
	parseTime func(string) (time.Time, error)
}

// WithLenientDates makes Parse accept Date values in formats other than the
// HTTP date format using ParseTimeLenient.
func WithLenientDates() ParseOption {
	return func(o *parseOpts) {
		o.parseTime = ParseTimeLenient
	}
}

// WithBreak sets the line break the parsed header will be written with. The
// default is CRLF. Parse accepts both LF and CRLF input either way.
func WithBreak(lbr Break) ParseOption {
	return func(o *parseOpts) {
		o.lbr = lbr
	}
}

// Parse reads a complete header block and returns it as a Header.
//
// The payload is read one line at a time. Lines may end in LF or CRLF. Reading
// stops at the first empty line, at the end of the payload, or silently at the
// first line longer than MaxLineLength. A line starting with "HTTP" is taken as
// the status line and sets the version and status of the header rather than
// adding a field.
//
// Every other line is split into name and value at the first ": ". Lines
// without that separator and lines whose name is not known to field.Lookup are
// skipped. The fields listed below are converted to typed values:
//
//   - Date is parsed as an HTTP date and stored as a number of Unix seconds.
//     A value that is already a decimal number of Unix seconds is kept as is.
//   - Content-Length, Max-Forwards, Age, Retry-After, and
//     Access-Control-Max-Age are stored as numbers.
//   - Expect, If-Modified-Since, If-Unmodified-Since,
//     Strict-Transport-Security, and X-XSS-Protection are stored as booleans,
//     true if the value is "true" in any case.
//
// All other fields are stored as text.
//
// When a field appears more than once, the last value wins, but the field
// keeps the position of its first appearance. The fields of the returned
// header are in the order they first appeared in the payload.
//
// If a value cannot be converted, Parse returns nil and a *ValueError. No
// partial header is ever returned.
func Parse(payload string, opts ...ParseOption) (*Header, error) {
	o := parseOpts{
		lbr:       CRLF,
		parseTime: ParseTime,
	}
	for _, opt := range opts {
		opt(&o)
	}

	h := New()
	h.lbr = o.lbr

	var (
		order  = make([]field.ID, 0, 16)
		latest = make(map[field.ID]*field.Field, 16)
		rest   = payload
	)

	for lineNo := 1; rest != ""; lineNo++ {
		var line string
		if ix := strings.IndexByte(rest, '\n'); ix >= 0 {
			line, rest = rest[:ix], rest[ix+1:]
		} else {
			line, rest = rest, ""
		}
		line = strings.TrimSuffix(line, "\r")

		if line == "" || len(line) > MaxLineLength {
			break
		}

		if strings.HasPrefix(line, "HTTP") {
			h.setStatusLine(line)
			continue
		}

		name, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}

		id := field.Lookup(name)
		if id == field.Unknown {
			continue
		}

		f, err := convert(id, value, &o)
		if err != nil {
			return nil, &ValueError{
				Line:  lineNo,
				ID:    id,
				Value: value,
				Err:   err,
			}
		}

		if _, seen := latest[id]; !seen {
			order = append(order, id)
		}
		latest[id] = f
	}

	// Append puts each field in front, so go backwards to keep input order.
	for i := len(order) - 1; i >= 0; i-- {
		h.Append(latest[order[i]])
	}

	return h, nil
}

// convert builds a field of the type required by the given field ID.
func convert(id field.ID, value string, o *parseOpts) (*field.Field, error) {
	if id == field.Date {
		value = strings.TrimSpace(value)
		if n, ok := epochSeconds(value); ok {
			return field.NewNumber(id, n), nil
		}
		t, err := o.parseTime(value)
		if err != nil {
			return nil, err
		}
		return field.NewNumber(id, t.Unix()), nil
	}

	if _, isNum := numberFields[id]; isNum {
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedNumber, err)
		}
		return field.NewNumber(id, n), nil
	}

	if _, isBool := booleanFields[id]; isBool {
		return field.NewBoolean(id, strings.EqualFold(strings.TrimSpace(value), "true")), nil
	}

	return field.NewText(id, value), nil
}

// epochSeconds reads a Date value written as a plain, optionally signed,
// decimal number of Unix seconds. This is how a Header writes a date that does
// not fit in an HTTP date.
func epochSeconds(value string) (int64, bool) {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// setStatusLine records a status line like "HTTP/1.1 404 Not Found". The
// version and status are only changed when they can be read from the line.
func (h *Header) setStatusLine(line string) {
	h.line = line

	proto, rest, _ := strings.Cut(line, " ")
	if strings.HasPrefix(proto, "HTTP/") {
		if v := strings.TrimPrefix(proto, "HTTP/"); v != "" {
			h.version = v
		}
	}

	code, _, _ := strings.Cut(strings.TrimLeft(rest, " "), " ")
	if n, err := strconv.Atoi(code); err == nil {
		h.status = status.Code(n)
	}
}
