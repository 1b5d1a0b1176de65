package lbytes

import (
	"testing"

	"cyber-savior/cpsav/cerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadPrefixedString(t *testing.T) {
	tests := map[string]struct {
		in  []byte
		out string
	}{
		"utf-8":           {[]byte{0x85, 'h', 'e', 'l', 'l', 'o'}, "hello"},
		"utf-8 multibyte": {[]byte{0x82, 0xC3, 0xA9}, "é"},
		"utf-16":          {[]byte{0x03, 'a', 0x00, 'b', 0x00, 'c', 0x00}, "abc"},
		"utf-16 non-latin": {
			[]byte{0x02, 0x42, 0x04, 0x4B, 0x04},
			"ты",
		},
		"utf-16 surrogate pair": {
			[]byte{0x02, 0x3D, 0xD8, 0x00, 0xDE},
			"😀",
		},
		"empty": {[]byte{0x00}, ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			reader := NewBytesReader(test.in)
			s, err := reader.ReadPrefixedString()
			require.NoError(t, err)
			assert.Equal(t, test.out, s)
			assert.Zero(t, reader.Len())
		})
	}
}

func TestReader_ReadPrefixedString_Errors(t *testing.T) {
	tests := map[string]struct {
		in   []byte
		kind cerr.Kind
	}{
		"utf-8 short":          {[]byte{0x83, 'a', 'b'}, cerr.KindTruncatedInput},
		"utf-16 short":         {[]byte{0x02, 'a', 0x00, 'b'}, cerr.KindTruncatedInput},
		"missing length":       {[]byte{}, cerr.KindTruncatedInput},
		"truncated length":     {[]byte{0x40}, cerr.KindTruncatedInput},
		"huge declared length": {[]byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 'a'}, cerr.KindTruncatedInput},
		"invalid utf-8":        {[]byte{0x82, 0xFF, 0xFE}, cerr.KindInvalidText},
		"lone high surrogate":  {[]byte{0x01, 0x3D, 0xD8}, cerr.KindInvalidText},
		"lone low surrogate":   {[]byte{0x01, 0x00, 0xDE}, cerr.KindInvalidText},
		"reversed pair":        {[]byte{0x02, 0x00, 0xDE, 0x3D, 0xD8}, cerr.KindInvalidText},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			reader := NewBytesReader(test.in)
			_, err := reader.ReadPrefixedString()
			assert.Equal(t, test.kind, cerr.Classify(err))
		})
	}
}

func TestEncodePrefixedString_RoundTrip(t *testing.T) {
	strings := []string{"", "root", "inventory", "é", "тыква", "😀 ok", "SaveVersion"}
	for _, s := range strings {
		utf8Bytes, err := EncodePrefixedStringUTF8(s)
		require.NoError(t, err)
		utf16Bytes, err := EncodePrefixedStringUTF16(s)
		require.NoError(t, err)

		for _, bs := range [][]byte{utf8Bytes, utf16Bytes} {
			reader := NewBytesReader(bs)
			decoded, err := reader.ReadPrefixedString()
			require.NoError(t, err)
			assert.Equal(t, s, decoded)
		}
	}

	bs, err := EncodePrefixedStringUTF16("😀")
	require.NoError(t, err)
	assert.Equal(t, byte(0x02), bs[0], "a surrogate pair counts as two code units")
}

func TestIsValidUTF16LE(t *testing.T) {
	assert.True(t, IsValidUTF16LE(nil))
	assert.True(t, IsValidUTF16LE([]byte{'a', 0x00}))
	assert.False(t, IsValidUTF16LE([]byte{'a'}))
	assert.True(t, IsValidUTF16LE([]byte{0x3D, 0xD8, 0x00, 0xDE}))
	assert.False(t, IsValidUTF16LE([]byte{0x3D, 0xD8, 'a', 0x00}))
}
