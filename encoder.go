package ldif

import (
	"io"
	"sync"
)

// Encoder writes LDIF attribute lines to an underlying [io.Writer].
// Methods are safe for concurrent use; each attribute is written with a
// single Write call.
type Encoder struct {
	w   io.Writer
	buf []byte

	writeMu sync.Mutex
}

// NewEncoder returns a new [Encoder] writing to w.
func NewEncoder(w io.Writer) *Encoder {
	e := new(Encoder)
	e.Reset(w)
	return e
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
// This permits reusing an [Encoder] rather than allocating a new one.
func (e *Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.buf = e.buf[:0]
}

// WriteAttribute encodes one name/value pair and writes the resulting
// physical lines to the underlying writer.
func (e *Encoder) WriteAttribute(name string, value []byte) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	return e.writeAttribute(name, value)
}

func (e *Encoder) writeAttribute(name string, value []byte) error {
	if e.w == nil {
		return errWriterNil
	}

	size, err := EncodedLen(len(name), len(value))
	if err != nil {
		return err
	}
	if cap(e.buf) < size {
		e.buf = make([]byte, 0, size)
	}

	e.buf = appendAttribute(e.buf[:0], name, value)
	_, err = e.w.Write(e.buf)
	return err
}

// WriteEntry writes one record: the dn line, every attribute in order, and
// the blank-line record separator.
func (e *Encoder) WriteEntry(ent Entry) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}

	if err := e.writeAttribute("dn", []byte(ent.DN)); err != nil {
		return err
	}
	for _, attr := range ent.Attrs {
		if err := e.writeAttribute(attr.Name, attr.Value); err != nil {
			return err
		}
	}

	_, err := io.WriteString(e.w, "\n")
	return err
}
