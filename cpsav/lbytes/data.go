// Package lbytes reads the little-endian primitives a save file is built
// from: fixed-width integers, packed integers and prefixed strings.
package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	// PackedIntMaxBytes is the widest a packed integer gets on disk.
	PackedIntMaxBytes = 5
	// PackedIntMagnitudeBits is 6 + 7 + 7 + 7 + 8.
	PackedIntMagnitudeBits = 35
	PackedIntMaxMagnitude  = int64(1)<<PackedIntMagnitudeBits - 1

	EncodingUTF8  = "UTF-8"
	EncodingUTF16 = "UTF-16"
)

const (
	packedSignBit         = 0x80
	packedFirstContinue   = 0x40
	packedFirstValueMask  = 0x3F
	packedNextContinue    = 0x80
	packedNextValueMask   = 0x7F
	packedFirstValueWidth = 6
	packedNextValueWidth  = 7
)
