package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"cyber-savior/cpsav/cerr"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Pos is the offset of the next byte to be read.
func (b *Reader) Pos() int64 {
	return b.Size() - int64(b.Len())
}

// SeekTo moves to an absolute offset. Offsets past the end of the buffer are
// reported as truncated input instead of being clamped.
func (b *Reader) SeekTo(offset int64) error {
	if offset < 0 || offset > b.Size() {
		return cerr.ErrTruncatedInput{
			Caller:    "SeekTo",
			Wanted:    int(offset),
			Remaining: int(b.Size()),
		}
	}
	_, err := b.Seek(offset, io.SeekStart)
	return err
}

// ReadBytes reads exactly n bytes. The length is checked against what is
// left before anything is allocated, so a corrupt length cannot trigger a
// huge allocation.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		return nil, cerr.ErrTruncatedInput{
			Caller:    "ReadBytes",
			Wanted:    n,
			Remaining: b.Len(),
		}
	}
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadU8() (byte, error) {
	if b.Len() == 0 {
		return 0, cerr.ErrTruncatedInput{
			Caller:    "ReadU8",
			Wanted:    1,
			Remaining: 0,
		}
	}
	return b.ReadByte()
}

func (b *Reader) ReadUInt() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt() (int32, error) {
	result, err := b.ReadUInt()
	if err != nil {
		return 0, err
	}
	return int32(result), nil
}
