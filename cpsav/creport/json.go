package creport

import (
	"cyber-savior/cpsav/caccount"
	"cyber-savior/cpsav/cerr"
	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
)

func entryToOrderedMap(entry caccount.Entry) *orderedmap.OrderedMap {
	om := orderedmap.New()
	om.Set("index", entry.Index)
	om.Set("name", entry.Name)
	om.Set("own_bytes", entry.OwnBytes)
	om.Set("total_bytes", entry.TotalBytes)
	om.Set("num_direct_children", entry.NumDirectChildren)
	if entry.IsFlagged() {
		om.Set("error", string(cerr.Classify(entry.Err)))
	}
	return om
}

// ToOrderedMap lays out the accounting with stable key order, so that two
// runs over the same save give byte identical JSON.
func ToOrderedMap(accounting *caccount.Accounting) *orderedmap.OrderedMap {
	om := orderedmap.New()
	om.Set("num_nodes", accounting.Len())
	om.Set("num_flagged", len(caccount.Flagged(accounting)))
	om.Set(
		"nodes",
		lo.Map(
			accounting.Values(),
			func(entry caccount.Entry, _ int) *orderedmap.OrderedMap {
				return entryToOrderedMap(entry)
			},
		),
	)
	return om
}

func FailureToOrderedMap(err error) *orderedmap.OrderedMap {
	om := orderedmap.New()
	om.Set("error", string(cerr.Classify(err)))
	om.Set("message", FormatFailure(err))
	return om
}
