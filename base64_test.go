package ldif

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	require.Len(t, alphabet, 64)

	seen := make(map[byte]bool)
	for _, c := range []byte(alphabet) {
		require.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
	}
}

// sym2nib must be the exact inverse of alphabet, with everything else
// (padding included) mapped to the invalid sentinel.
func TestInverseTable(t *testing.T) {
	for i, c := range []byte(alphabet) {
		require.Equal(t, byte(i), sym2nib[c], "symbol %q", c)
	}

	member := make(map[byte]bool)
	for _, c := range []byte(alphabet) {
		member[c] = true
	}
	for c := 0; c < 128; c++ {
		if !member[byte(c)] {
			require.Equal(t, byte(invalid), sym2nib[c], "byte 0x%02x", c)
		}
	}

	require.Equal(t, byte(invalid), sym2nib[padChar])
}
