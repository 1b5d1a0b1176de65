// Package cfooter finds the node table of a save through the trailer at the
// end of the buffer.
//
// The last 8 bytes of a save are the offset of the node table followed by
// the marker "ENOD". The node table itself starts with "EDON". Both markers
// must match; there is no fallback search for the table.
package cfooter

type (
	Footer struct {
		TreeOffset uint32 `json:"tree_offset"`
		Signature  []byte `json:"signature"`
	}
)

const (
	DefaultFooterSize = 8
	MagicSize         = 4
)

var (
	TrailerMagicBytes = []byte("ENOD")
	TreeMagicBytes    = []byte("EDON")
)
