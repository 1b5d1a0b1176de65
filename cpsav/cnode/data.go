package cnode

type (
	// Entry is one record of the node table. NextIndex and ChildIndex are
	// positions in the same table, or Sentinel.
	Entry struct {
		Name       string `json:"name"`
		NextIndex  int32  `json:"next_index"`
		ChildIndex int32  `json:"child_index"`
		DataOffset uint32 `json:"data_offset"`
		DataSize   uint32 `json:"data_size"`
	}
)

const (
	Sentinel = int32(-1)

	// MinEntrySize is a record with an empty name: one length byte plus four
	// 32-bit fields.
	MinEntrySize = 1 + 4*4
)

func (r Entry) HasChildren() bool {
	return r.ChildIndex != Sentinel
}

func (r Entry) HasNext() bool {
	return r.NextIndex != Sentinel
}

// DataEnd is the first offset past the node's payload. It is computed in 64
// bits so that offset + size never wraps.
func (r Entry) DataEnd() uint64 {
	return uint64(r.DataOffset) + uint64(r.DataSize)
}
