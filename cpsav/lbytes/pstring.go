package lbytes

import (
	"unicode/utf8"

	"cyber-savior/cpsav/cerr"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReadPrefixedString reads a packed length followed by the string payload.
// The sign of the length picks the encoding: a negative length counts UTF-8
// bytes, a non-negative one counts UTF-16 little-endian code units.
func (b *Reader) ReadPrefixedString() (string, error) {
	count, err := b.ReadPackedInt()
	if err != nil {
		return "", errors.Wrap(err, "ReadPrefixedString error reading length")
	}
	if count < 0 {
		return b.readUTF8(-count)
	}
	return b.readUTF16(count)
}

func (b *Reader) checkRemaining(caller string, n int64) error {
	if n > int64(b.Len()) {
		return cerr.ErrTruncatedInput{
			Caller:    caller,
			Wanted:    int(n),
			Remaining: b.Len(),
		}
	}
	return nil
}

func (b *Reader) readUTF8(n int64) (string, error) {
	if err := b.checkRemaining("ReadPrefixedString", n); err != nil {
		return "", err
	}
	bs, err := b.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", cerr.ErrInvalidText{
			Caller:   "ReadPrefixedString",
			Encoding: EncodingUTF8,
		}
	}
	return string(bs), nil
}

func (b *Reader) readUTF16(units int64) (string, error) {
	if err := b.checkRemaining("ReadPrefixedString", units*2); err != nil {
		return "", err
	}
	bs, err := b.ReadBytes(int(units * 2))
	if err != nil {
		return "", err
	}
	if !IsValidUTF16LE(bs) {
		return "", cerr.ErrInvalidText{
			Caller:   "ReadPrefixedString",
			Encoding: EncodingUTF16,
		}
	}
	decoded, err := utf16LE.NewDecoder().Bytes(bs)
	if err != nil {
		return "", errors.Wrap(err, "ReadPrefixedString error decoding UTF-16")
	}
	return string(decoded), nil
}

// IsValidUTF16LE reports whether bs is an even number of bytes holding
// little-endian code units with every surrogate correctly paired. The
// x/text decoder would silently substitute U+FFFD for a lone surrogate.
func IsValidUTF16LE(bs []byte) bool {
	if len(bs)%2 != 0 {
		return false
	}
	for i := 0; i < len(bs); i += 2 {
		unit := uint16(bs[i]) | uint16(bs[i+1])<<8
		switch {
		case unit >= 0xDC00 && unit <= 0xDFFF:
			return false
		case unit >= 0xD800 && unit <= 0xDBFF:
			if i+3 >= len(bs) {
				return false
			}
			low := uint16(bs[i+2]) | uint16(bs[i+3])<<8
			if low < 0xDC00 || low > 0xDFFF {
				return false
			}
			i += 2
		}
	}
	return true
}
