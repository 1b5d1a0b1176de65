package lbytes

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

func EncodeValueUInt(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeValueInt(value int32) []byte {
	return EncodeValueUInt(uint32(value))
}

// EncodePrefixedStringUTF8 writes s with a negative (byte count) length.
// An empty string gets a zero length, which reads back as empty UTF-16.
func EncodePrefixedStringUTF8(s string) ([]byte, error) {
	prefix, err := EncodePackedInt(-int64(len(s)))
	if err != nil {
		return nil, errors.Wrap(err, "EncodePrefixedStringUTF8 error")
	}
	return append(prefix, s...), nil
}

// EncodePrefixedStringUTF16 writes s as UTF-16LE code units with a
// non-negative (code unit count) length.
func EncodePrefixedStringUTF16(s string) ([]byte, error) {
	payload, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, `EncodePrefixedStringUTF16 error encoding "%s"`, s)
	}
	prefix, err := EncodePackedInt(int64(len(payload) / 2))
	if err != nil {
		return nil, errors.Wrap(err, "EncodePrefixedStringUTF16 error")
	}
	return append(prefix, payload...), nil
}
