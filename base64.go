package ldif

import "math"

// LineWidth is the column at which encoded output is folded onto a
// continuation line. Fixed by the format.
const LineWidth = 76

// FoldMarker is the sentinel byte the line-joining stage substitutes for a
// physical line break and for the single indentation byte that followed it.
// [ParseLine] deletes every occurrence from the value, which reconstitutes
// the unfolded text.
const FoldMarker = 0x01

const padChar = '='

// alphabet maps 6-bit values to Base64 symbols.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// invalid marks bytes outside the Base64 alphabet in sym2nib.
const invalid = 0xff

// sym2nib is the exact inverse of alphabet for 7-bit input.
var sym2nib = [128]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0x3e, 0xff, 0xff, 0xff, 0x3f,
	0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x3b,
	0x3c, 0x3d, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
	0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16,
	0x17, 0x18, 0x19, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
	0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30,
	0x31, 0x32, 0x33, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// EncodedLen returns the output size [EncodeAttribute] reserves for a value
// of valueLen bytes under a name of nameLen bytes: the name, separator and
// terminator, worst-case Base64 expansion, and a break-and-indent pair per
// full line. It fails with [ErrTooLarge] when the result is not
// representable.
func EncodedLen(nameLen, valueLen int) (int, error) {
	if valueLen > (math.MaxInt-3)/4 {
		return 0, ErrTooLarge
	}
	b64 := valueLen*4/3 + 3
	if nameLen > math.MaxInt-4-b64 {
		return 0, ErrTooLarge
	}
	n := nameLen + 4 + b64
	wraps := (b64 + nameLen + 3) / LineWidth * 2
	if n > math.MaxInt-wraps {
		return 0, ErrTooLarge
	}
	return n + wraps, nil
}
