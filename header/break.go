package header

// Break is the line terminator written after each header field.
type Break string

// Line breaks a header may be written with. If you don't know what to pick,
// choose CRLF.
const (
	CRLF Break = "\x0d\x0a" // \r\n - HTTP linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
