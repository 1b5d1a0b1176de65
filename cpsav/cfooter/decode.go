package cfooter

import (
	"bytes"

	"cyber-savior/cpsav/cerr"
	"cyber-savior/cpsav/lbytes"
	"github.com/pkg/errors"
)

func createMagicReadFunction(reader *lbytes.Reader, caller string, expected []byte) lbytes.ReadFunction {
	return func() (any, error) {
		magicBytes, err := reader.ReadBytes(MagicSize)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(magicBytes, expected) {
			return nil, cerr.ErrBadSignature{
				Caller:   caller,
				Expected: expected,
				Actual:   magicBytes,
			}
		}
		return magicBytes, nil
	}
}

// IsValidTrailer reports whether bs ends with the trailer marker. It does
// not look at the tree offset.
func IsValidTrailer(bs []byte) bool {
	return len(bs) >= DefaultFooterSize && bytes.HasSuffix(bs, TrailerMagicBytes)
}

// Decode reads the trailer from the last 8 bytes of the reader's buffer.
// The reader is left positioned at the end of the buffer.
func Decode(reader *lbytes.Reader) (*Footer, error) {
	if reader.Size() < DefaultFooterSize {
		return nil, cerr.ErrTruncatedInput{
			Caller:    "cfooter.Decode",
			Wanted:    DefaultFooterSize,
			Remaining: int(reader.Size()),
		}
	}
	if err := reader.SeekTo(reader.Size() - DefaultFooterSize); err != nil {
		return nil, errors.Wrap(err, "cfooter.Decode error")
	}

	readTreeOffset := lbytes.CreateUIntReadFunction(reader)
	readTrailerMagic := createMagicReadFunction(reader, "cfooter.Decode", TrailerMagicBytes)
	instructions := []lbytes.Instruction{
		{Key: "tree_offset", ReadFunction: readTreeOffset},
		{Key: "signature", ReadFunction: readTrailerMagic},
	}
	footer, err := lbytes.ExecuteInstructions[Footer](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "cfooter.Decode error")
	}

	return footer, nil
}

// LocateTree moves the reader to the footer's tree offset and checks the
// tree marker there. On success the reader sits on the first byte after the
// marker, which is the node count.
func LocateTree(reader *lbytes.Reader, footer Footer) error {
	if err := reader.SeekTo(int64(footer.TreeOffset)); err != nil {
		return errors.Wrapf(err, "cfooter.LocateTree error seeking to tree offset %d", footer.TreeOffset)
	}
	readTreeMagic := createMagicReadFunction(reader, "cfooter.LocateTree", TreeMagicBytes)
	if _, err := readTreeMagic(); err != nil {
		return errors.Wrapf(err, "cfooter.LocateTree error at tree offset %d", footer.TreeOffset)
	}
	return nil
}
