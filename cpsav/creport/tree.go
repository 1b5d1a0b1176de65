package creport

import (
	"strings"

	"cyber-savior/cpsav/caccount"
	"cyber-savior/cpsav/cstruct"
	"cyber-savior/ds"
)

const treeIndent = "  "

// FormatTree prints the node hierarchy, children indented under their
// parent. Each node is printed at most once even if the links loop; a node
// whose chain cannot be walked is printed without children.
func FormatTree(file cstruct.Struct, accounting *caccount.Accounting) string {
	type Tracker struct {
		Index int
		Depth int
	}

	var sb strings.Builder
	visited := make([]bool, len(file.Nodes))
	stack := ds.NewStack[Tracker]()
	roots := file.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		stack.Push(Tracker{Index: roots[i], Depth: 0})
	}

	for !stack.IsEmpty() {
		tracker := stack.Pop()
		if visited[tracker.Index] {
			continue
		}
		visited[tracker.Index] = true

		entry, ok := accounting.Get(tracker.Index)
		if !ok {
			entry = caccount.AccountNode(file.Nodes, tracker.Index)
		}
		sb.WriteString(strings.Repeat(treeIndent, tracker.Depth))
		sb.WriteString(FormatLine(entry))
		sb.WriteRune('\n')

		children, err := file.Children(tracker.Index)
		if err != nil {
			continue
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(Tracker{Index: children[i], Depth: tracker.Depth + 1})
		}
	}

	return sb.String()
}
