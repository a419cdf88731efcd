// Package header provides an HTTP header block: an ordered collection of
// typed header fields with the protocol version and status code that came
// with it.
//
// A Header may be built up one field at a time with the Append methods or
// parsed from a raw header block with Parse. Either way, it is written back
// out in wire format with WriteTo, String, or Bytes.
//
// Fields that are appended are placed in front of the fields already present,
// so the most recently added field is written first. Parse preserves the order
// in which fields appear in its input.
package header
