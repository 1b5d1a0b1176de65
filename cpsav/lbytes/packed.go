package lbytes

import (
	"cyber-savior/cpsav/cerr"
)

// ReadPackedInt decodes a packed integer.
//
// The first byte holds the sign (0x80), a continuation flag (0x40) and the
// low 6 bits of the magnitude. Up to three more bytes add 7 bits each with
// 0x80 as their continuation flag, and a fifth byte adds a full 8 bits:
//
//	byte 1 | S C m m m m m m |  bits  0..5
//	byte 2 | C m m m m m m m |  bits  6..12
//	byte 3 | C m m m m m m m |  bits 13..19
//	byte 4 | C m m m m m m m |  bits 20..26
//	byte 5 | m m m m m m m m |  bits 27..34
//
// The sign applies to the whole value.
func (b *Reader) ReadPackedInt() (int64, error) {
	first, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	negative := first&packedSignBit != 0
	value := int64(first & packedFirstValueMask)
	more := first&packedFirstContinue != 0
	shift := packedFirstValueWidth
	for i := 1; more && i < PackedIntMaxBytes; i++ {
		next, err := b.ReadU8()
		if err != nil {
			return 0, err
		}
		if i == PackedIntMaxBytes-1 {
			value |= int64(next) << shift
			break
		}
		value |= int64(next&packedNextValueMask) << shift
		more = next&packedNextContinue != 0
		shift += packedNextValueWidth
	}

	if negative {
		return -value, nil
	}
	return value, nil
}

// EncodePackedInt is the inverse of Reader.ReadPackedInt. It always picks
// the shortest encoding.
func EncodePackedInt(value int64) ([]byte, error) {
	if value > PackedIntMaxMagnitude || value < -PackedIntMaxMagnitude {
		return nil, cerr.ErrPackedIntOverflow{
			Caller: "EncodePackedInt",
			Value:  value,
		}
	}
	magnitude := value
	first := byte(0)
	if value < 0 {
		magnitude = -value
		first |= packedSignBit
	}

	first |= byte(magnitude & packedFirstValueMask)
	magnitude >>= packedFirstValueWidth
	if magnitude == 0 {
		return []byte{first}, nil
	}

	bs := make([]byte, 0, PackedIntMaxBytes)
	bs = append(bs, first|packedFirstContinue)
	for i := 1; i < PackedIntMaxBytes-1; i++ {
		next := byte(magnitude & packedNextValueMask)
		magnitude >>= packedNextValueWidth
		if magnitude == 0 {
			return append(bs, next), nil
		}
		bs = append(bs, next|packedNextContinue)
	}
	// the range check above leaves at most 8 bits for the last byte
	return append(bs, byte(magnitude)), nil
}

// PackedIntLen is the number of bytes EncodePackedInt produces for value.
func PackedIntLen(value int64) int {
	if value < 0 {
		value = -value
	}
	n := 1
	for limit := int64(1) << packedFirstValueWidth; value >= limit && n < PackedIntMaxBytes; n++ {
		limit <<= packedNextValueWidth
	}
	return n
}
