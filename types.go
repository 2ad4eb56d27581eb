// Package ldif implements the LDIF attribute-line codec used for address
// book import and export: splitting "type: value" and "type:: base64-value"
// logical lines into typed fields, and rendering name/value pairs as
// 76-column folded output per the LDAP Data Interchange Format.
//
// The codec operates on one logical line at a time. Joining folded physical
// lines into a logical line is the caller's job; see [FoldMarker] for the
// contract between the two stages.
package ldif

import (
	"errors"
	"fmt"
)

// AttributeLine is one decoded attribute. Value holds the raw bytes after
// any Base64 decoding and fold-marker removal; len(Value) is the exact
// decoded byte count, including embedded NUL or control bytes.
type AttributeLine struct {
	Name  string
	Value []byte
}

// Entry is one LDIF record: a distinguished name followed by its attributes.
type Entry struct {
	DN    string
	Attrs []AttributeLine
}

var (
	// ErrMalformedLine reports an attribute line with no ":" separator, or
	// no value content after the separator.
	ErrMalformedLine = errors.New("ldif: malformed attribute line")

	// ErrInvalidBase64 reports a Base64 value containing a byte outside the
	// alphabet where a data symbol is required. The error returned by
	// [ParseLine] is an [*InvalidBase64Error] wrapping this sentinel.
	ErrInvalidBase64 = errors.New("ldif: invalid base64 encoding")

	// ErrTooLarge reports a name/value pair whose encoded size is not
	// representable.
	ErrTooLarge = errors.New("ldif: encoded attribute too large")
)

var errWriterNil = errors.New("ldif: writer is nil")

// InvalidBase64Error names the offending byte and its offset within the
// Base64 text (after fold-marker removal).
type InvalidBase64Error struct {
	Byte byte
	Pos  int
}

func (e *InvalidBase64Error) Error() string {
	return fmt.Sprintf("ldif: invalid base64 character 0x%02x at offset %d", e.Byte, e.Pos)
}

func (e *InvalidBase64Error) Unwrap() error { return ErrInvalidBase64 }
