package ldif

// printable reports whether c is printable 7-bit ASCII.
func printable(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

// EncodeAttribute renders one name/value pair as LDIF physical lines. The
// value is emitted literally after "name: " when it is printable ASCII with
// no leading whitespace or colon, and Base64-encoded after "name:: "
// otherwise. Output is folded so no line exceeds [LineWidth] columns, each
// continuation line is indented with a single space, and the last line ends
// with a line feed.
//
// The name is assumed free of ":" and control bytes; the value may be any
// byte sequence.
func EncodeAttribute(name string, value []byte) ([]byte, error) {
	size, err := EncodedLen(len(name), len(value))
	if err != nil {
		return nil, err
	}
	return appendAttribute(make([]byte, 0, size), name, value), nil
}

// appendAttribute appends the encoded attribute to out. Literal emission is
// attempted first and aborted to Base64 if a later byte turns out not to be
// printable; the partial literal output is discarded on restart.
func appendAttribute(out []byte, name string, value []byte) []byte {
	out = append(out, name...)
	out = append(out, ':')
	col := len(name) + 2
	save := len(out)

	// emit writes one value byte or symbol under the folding rule. col is
	// the number of characters already on the current physical line.
	emit := func(c byte) {
		if col >= LineWidth {
			out = append(out, '\n', ' ')
			col = 1
		}
		out = append(out, c)
		col++
	}

	b64 := len(value) == 0 || asciiSpace(value[0]) || value[0] == ':'
	if !b64 {
		out = append(out, ' ')
		for _, c := range value {
			if !printable(c) {
				b64 = true
				break
			}
			emit(c)
		}
	}

	if b64 {
		out = append(out[:save], ':', ' ')
		col = len(name) + 3

		i := 0
		for ; i+2 < len(value); i += 3 {
			bits := uint32(value[i])<<16 | uint32(value[i+1])<<8 | uint32(value[i+2])
			emit(alphabet[bits>>18&0x3f])
			emit(alphabet[bits>>12&0x3f])
			emit(alphabet[bits>>6&0x3f])
			emit(alphabet[bits&0x3f])
		}

		// Zero-pad a trailing partial group to a full triple and emit "="
		// at the unused trailing symbol positions.
		if rem := len(value) - i; rem > 0 {
			var grp [3]byte
			copy(grp[:], value[i:])
			bits := uint32(grp[0])<<16 | uint32(grp[1])<<8 | uint32(grp[2])
			for j := 0; j < 4; j++ {
				if j > rem {
					emit(padChar)
				} else {
					emit(alphabet[bits>>(18-6*j)&0x3f])
				}
			}
		}
	}

	return append(out, '\n')
}
