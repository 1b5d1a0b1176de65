package cstruct

import (
	"cyber-savior/cpsav/cerr"
	"cyber-savior/cpsav/cnode"
)

// WalkChildren lists the immediate children of nodes[index]: its
// ChildIndex, then NextIndex from there until the sentinel. Every index is
// bounds checked before use, and a chain longer than the table means it
// loops, which is reported as a malformed link.
func WalkChildren(nodes []cnode.Entry, index int) ([]int, error) {
	n := len(nodes)
	if index < 0 || index >= n {
		return nil, cerr.ErrMalformedLink{
			Caller:    "WalkChildren",
			NodeIndex: index,
			Field:     "index",
			Value:     int32(index),
			NodeCount: n,
		}
	}

	children := make([]int, 0)
	field := "child_index"
	from := index
	current := nodes[index].ChildIndex
	for current != cnode.Sentinel {
		if !cnode.IsValidIndex(current, n) || len(children) == n {
			return nil, cerr.ErrMalformedLink{
				Caller:    "WalkChildren",
				NodeIndex: from,
				Field:     field,
				Value:     current,
				NodeCount: n,
			}
		}
		children = append(children, int(current))
		field = "next_index"
		from = int(current)
		current = nodes[current].NextIndex
	}
	return children, nil
}

func (r Struct) Children(index int) ([]int, error) {
	return WalkChildren(r.Nodes, index)
}

// Roots are the nodes that are not in any node's child chain, in table
// order. Chains that fail to walk are skipped; their nodes then show up as
// roots.
func (r Struct) Roots() []int {
	isChild := make([]bool, len(r.Nodes))
	for i := range r.Nodes {
		children, err := r.Children(i)
		if err != nil {
			continue
		}
		for _, child := range children {
			isChild[child] = true
		}
	}

	roots := make([]int, 0)
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}
