// Package httpheader is a small library for working with HTTP header blocks
// and status codes as plain data. It does no network I/O of its own. It is
// meant to sit underneath an HTTP client or server that needs to build or
// read header text.
//
// The code is split by concern:
//
// The status package maps status codes to their reason phrases.
//
// The header/field package holds the registry of known header field names
// and the field type, a single name and typed value. Field names are
// canonicalized before lookup by upper-casing the first letter and every
// letter following a hyphen, so "content-type" is found as "Content-Type".
// No other case folding is done.
//
// The header package provides header.Header, an ordered collection of fields
// that can be parsed from a raw header block and written back out in wire
// format. Some fields are stored as numbers or booleans rather than text, and
// Date is stored as Unix seconds.
package httpheader
