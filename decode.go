package ldif

import (
	"bytes"
	"fmt"
)

// asciiSpace reports whether c is ASCII whitespace.
func asciiSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseLine splits one logical attribute line of the form "type:[:] value"
// into its name and value. A double colon marks a Base64-encoded value,
// which is decoded before returning. Fold markers left behind by the
// line-joining stage are deleted from the value.
//
// The returned Value is freshly allocated and never aliases line.
func ParseLine(line []byte) (AttributeLine, error) {
	// The name starts at the first non-whitespace byte.
	i := 0
	for i < len(line) && asciiSpace(line[i]) {
		i++
	}
	line = line[i:]

	sep := bytes.IndexByte(line, ':')
	if sep < 0 {
		return AttributeLine{}, fmt.Errorf("%w: missing separator", ErrMalformedLine)
	}

	// Trim whitespace between the name and the colon.
	end := sep
	for end > 0 && asciiSpace(line[end-1]) {
		end--
	}
	name := string(line[:end])

	rest := line[sep+1:]
	b64 := len(rest) > 0 && rest[0] == ':'
	if b64 {
		rest = rest[1:]
	}

	for len(rest) > 0 && asciiSpace(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return AttributeLine{}, fmt.Errorf("%w: missing value", ErrMalformedLine)
	}

	// Delete fold markers in a single compaction pass, into a fresh buffer.
	value := make([]byte, 0, len(rest))
	for _, c := range rest {
		if c != FoldMarker {
			value = append(value, c)
		}
	}

	if b64 {
		n, err := decodeBase64(value)
		if err != nil {
			return AttributeLine{}, err
		}
		value = value[:n]
	}

	return AttributeLine{Name: name, Value: value}, nil
}

// decodeBase64 decodes v in place, in strict 4-symbol groups of 3 output
// bytes each. A "=" at the third or fourth symbol position ends the value
// after one or two bytes of that group; anything following the padding is
// ignored. The decoded length is always at most the encoded length, so the
// write cursor never overtakes the read cursor.
func decodeBase64(v []byte) (int, error) {
	// sym returns the 6-bit value of the symbol at pos. A group that ends
	// where a data symbol is required is reported as an invalid character
	// at the end of input.
	sym := func(pos int) (byte, error) {
		if pos >= len(v) {
			return 0, &InvalidBase64Error{Byte: 0, Pos: len(v)}
		}
		c := v[pos]
		if c >= 0x80 || sym2nib[c] == invalid {
			return 0, &InvalidBase64Error{Byte: c, Pos: pos}
		}
		return sym2nib[c], nil
	}

	n := 0
	for p := 0; p < len(v); p += 4 {
		// First and second symbols carry bits unconditionally.
		nib, err := sym(p)
		if err != nil {
			return 0, err
		}
		b0 := nib << 2

		nib, err = sym(p + 1)
		if err != nil {
			return 0, err
		}
		b0 |= nib >> 4
		b1 := (nib & 0x0f) << 4
		v[n] = b0

		if p+2 >= len(v) {
			return 0, &InvalidBase64Error{Byte: 0, Pos: len(v)}
		}
		if v[p+2] == padChar {
			n++
			break
		}
		nib, err = sym(p + 2)
		if err != nil {
			return 0, err
		}
		b1 |= nib >> 2
		b2 := (nib & 0x03) << 6
		v[n+1] = b1

		if p+3 >= len(v) {
			return 0, &InvalidBase64Error{Byte: 0, Pos: len(v)}
		}
		if v[p+3] == padChar {
			n += 2
			break
		}
		nib, err = sym(p + 3)
		if err != nil {
			return 0, err
		}
		v[n+2] = b2 | nib
		n += 3
	}

	return n, nil
}
