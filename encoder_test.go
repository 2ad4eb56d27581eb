package ldif

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderWriteAttribute(t *testing.T) {
	buf := new(bytes.Buffer)
	e := NewEncoder(buf)

	require.NoError(t, e.WriteAttribute("cn", []byte("Jane Doe")))
	require.NoError(t, e.WriteAttribute("data", []byte{0x00, 0x01, 0x02}))

	require.Equal(t, "cn: Jane Doe\ndata:: AAEC\n", buf.String())
}

func TestEncoderWriteEntry(t *testing.T) {
	buf := new(bytes.Buffer)
	e := NewEncoder(buf)

	err := e.WriteEntry(Entry{
		DN: "cn=Jane Doe,mail=jane@example.com",
		Attrs: []AttributeLine{
			{Name: "cn", Value: []byte("Jane Doe")},
			{Name: "mail", Value: []byte("jane@example.com")},
			{Name: "jpegPhoto", Value: []byte{0xff, 0xd8, 0xff}},
		},
	})
	require.NoError(t, err)

	expected := "dn: cn=Jane Doe,mail=jane@example.com\n" +
		"cn: Jane Doe\n" +
		"mail: jane@example.com\n" +
		"jpegPhoto:: /9j/\n" +
		"\n"
	require.Equal(t, expected, buf.String())
}

// Every line of a multi-entry export must decode back to the field it came
// from, and records stay separated by exactly one blank line.
func TestEncoderWriteEntryRoundTrip(t *testing.T) {
	entries := []Entry{
		{
			DN: "cn=Jane Doe",
			Attrs: []AttributeLine{
				{Name: "cn", Value: []byte("Jane Doe")},
				{Name: "notes", Value: []byte("line one\nline two")},
			},
		},
		{
			DN: " leading space needs encoding",
			Attrs: []AttributeLine{
				{Name: "mail", Value: []byte("jane@example.com")},
			},
		},
	}

	buf := new(bytes.Buffer)
	e := NewEncoder(buf)
	for _, ent := range entries {
		require.NoError(t, e.WriteEntry(ent))
	}

	records := strings.Split(strings.TrimSuffix(buf.String(), "\n\n"), "\n\n")
	require.Len(t, records, len(entries))

	for i, record := range records {
		lines := strings.Split(record, "\n")
		require.Equal(t, 1+len(entries[i].Attrs), len(lines))

		dn, err := ParseLine([]byte(lines[0]))
		require.NoError(t, err)
		require.Equal(t, "dn", dn.Name)
		require.Equal(t, []byte(entries[i].DN), dn.Value)

		for j, attr := range entries[i].Attrs {
			al, err := ParseLine([]byte(lines[1+j]))
			require.NoError(t, err)
			require.Equal(t, attr.Name, al.Name)
			require.Equal(t, attr.Value, al.Value)
		}
	}
}

func TestEncoderNilWriter(t *testing.T) {
	e := new(Encoder)
	require.Error(t, e.WriteAttribute("cn", []byte("x")))
	require.Error(t, e.WriteEntry(Entry{DN: "cn=x"}))
}

func TestEncoderReset(t *testing.T) {
	first := new(bytes.Buffer)
	e := NewEncoder(first)
	require.NoError(t, e.WriteAttribute("cn", []byte("one")))

	second := new(bytes.Buffer)
	e.Reset(second)
	require.NoError(t, e.WriteAttribute("cn", []byte("two")))

	require.Equal(t, "cn: one\n", first.String())
	require.Equal(t, "cn: two\n", second.String())
}
