package cnode

import (
	"cyber-savior/cpsav/cerr"
)

func IsValidIndex(index int32, numEntries int) bool {
	return index == Sentinel || (index >= 0 && int(index) < numEntries)
}

// ValidateLinks checks that every NextIndex and ChildIndex is either the
// sentinel or a position inside entries. Cycles are not detected here; a
// walk over the links has to bound itself.
func ValidateLinks(entries []Entry) error {
	n := len(entries)
	for i, entry := range entries {
		if !IsValidIndex(entry.NextIndex, n) {
			return cerr.ErrMalformedLink{
				Caller:    "ValidateLinks",
				NodeIndex: i,
				Field:     "next_index",
				Value:     entry.NextIndex,
				NodeCount: n,
			}
		}
		if !IsValidIndex(entry.ChildIndex, n) {
			return cerr.ErrMalformedLink{
				Caller:    "ValidateLinks",
				NodeIndex: i,
				Field:     "child_index",
				Value:     entry.ChildIndex,
				NodeCount: n,
			}
		}
	}
	return nil
}
