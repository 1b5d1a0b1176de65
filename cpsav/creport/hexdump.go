package creport

import (
	"fmt"
	"strings"

	"cyber-savior/ds"
)

const hexDumpWidth = 16

// HexDump shows data as rows of offset, hex bytes and printable ASCII.
// Offsets start at base so rows line up with positions in the save.
func HexDump(data []byte, base uint32) string {
	var sb strings.Builder
	for i, chunk := range ds.MakeChunks(data, hexDumpWidth) {
		fmt.Fprintf(&sb, "%08x ", uint64(base)+uint64(i*hexDumpWidth))
		for j := 0; j < hexDumpWidth; j++ {
			if j%8 == 0 {
				sb.WriteRune(' ')
			}
			if j < len(chunk) {
				fmt.Fprintf(&sb, "%02x ", chunk[j])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString(" |")
		for _, b := range chunk {
			if b >= 0x20 && b < 0x7F {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
