// Package caccount splits each node's declared size into the bytes its
// immediate children declare and the bytes left over for the node itself.
//
// Only the first level of children is summed. A child's DataSize is taken
// to already cover its own subtree.
package caccount

import (
	"cyber-savior/cpsav/cerr"
	"cyber-savior/cpsav/cnode"
	"cyber-savior/cpsav/cstruct"
	"cyber-savior/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	// Entry is the accounting of one node. OwnBytes is signed so that an
	// inconsistent node shows how far its children overshoot instead of
	// wrapping around; Err is set for such nodes.
	Entry struct {
		Index             int    `json:"index"`
		Name              string `json:"name"`
		OwnBytes          int64  `json:"own_bytes"`
		TotalBytes        uint32 `json:"total_bytes"`
		ChildSum          uint64 `json:"child_sum"`
		NumDirectChildren int    `json:"num_direct_children"`
		Err               error  `json:"-"`
	}
	Accounting = ds.LinkedHashMap[int, Entry]
)

func (r Entry) IsFlagged() bool {
	return r.Err != nil
}

// AccountNode computes the entry for nodes[index]. Failures are recorded on
// the entry, never returned, so one bad node does not hide the others.
func AccountNode(nodes []cnode.Entry, index int) Entry {
	node := nodes[index]
	entry := Entry{
		Index:      index,
		Name:       node.Name,
		TotalBytes: node.DataSize,
	}

	children, err := cstruct.WalkChildren(nodes, index)
	if err != nil {
		entry.OwnBytes = int64(node.DataSize)
		entry.Err = errors.Wrap(err, "AccountNode error")
		return entry
	}
	entry.NumDirectChildren = len(children)
	entry.ChildSum = lo.Reduce(
		children,
		func(sum uint64, child int, _ int) uint64 {
			return sum + uint64(nodes[child].DataSize)
		},
		0,
	)
	entry.OwnBytes = int64(node.DataSize) - int64(entry.ChildSum)
	if entry.ChildSum > uint64(node.DataSize) {
		entry.Err = cerr.ErrInconsistentAccounting{
			Caller:    "AccountNode",
			NodeIndex: index,
			DataSize:  node.DataSize,
			ChildSum:  entry.ChildSum,
		}
	}
	return entry
}

// Account runs AccountNode over every node and keeps table order.
func Account(nodes []cnode.Entry) *Accounting {
	accounting := ds.NewLinkedHashMap[int, Entry]()
	for i := range nodes {
		accounting.Put(i, AccountNode(nodes, i))
	}
	return accounting
}

// Flagged returns the entries that carry an error, in table order.
func Flagged(accounting *Accounting) []Entry {
	return lo.Filter(
		accounting.Values(),
		func(entry Entry, _ int) bool {
			return entry.IsFlagged()
		},
	)
}
