// Package savtest builds save buffers in memory for tests.
package savtest

import (
	"fmt"

	"cyber-savior/cpsav/cfooter"
	"cyber-savior/cpsav/lbytes"
)

type (
	Node struct {
		Name       string
		UTF16      bool
		NextIndex  int32
		ChildIndex int32
		DataOffset uint32
		DataSize   uint32
	}
	// Builder lays a save out as [Payload][tree][trailer]. The override
	// fields are zero by default, which means "write the correct value".
	Builder struct {
		Payload []byte
		Nodes   []Node

		NodeCount    *int64
		TreeOffset   *uint32
		TreeMagic    []byte
		TrailerMagic []byte
	}
)

// Sentinel is the "no such node" index. It is repeated here because cnode
// tests import this package.
const Sentinel = -1

// Leaf is a node without siblings or children.
func Leaf(name string, dataSize uint32) Node {
	return Node{
		Name:       name,
		NextIndex:  Sentinel,
		ChildIndex: Sentinel,
		DataSize:   dataSize,
	}
}

func Int64(v int64) *int64 {
	return &v
}

func UInt32(v uint32) *uint32 {
	return &v
}

func EncodeRecord(node Node) []byte {
	var (
		name []byte
		err  error
	)
	if node.UTF16 {
		name, err = lbytes.EncodePrefixedStringUTF16(node.Name)
	} else {
		name, err = lbytes.EncodePrefixedStringUTF8(node.Name)
	}
	if err != nil {
		panic(fmt.Errorf("savtest.EncodeRecord: %w", err))
	}
	bs := append([]byte{}, name...)
	bs = append(bs, lbytes.EncodeValueInt(node.NextIndex)...)
	bs = append(bs, lbytes.EncodeValueInt(node.ChildIndex)...)
	bs = append(bs, lbytes.EncodeValueUInt(node.DataOffset)...)
	bs = append(bs, lbytes.EncodeValueUInt(node.DataSize)...)
	return bs
}

// Tree returns the node table: marker, packed count and records.
func (b Builder) Tree() []byte {
	treeMagic := cfooter.TreeMagicBytes
	if b.TreeMagic != nil {
		treeMagic = b.TreeMagic
	}
	nodeCount := int64(len(b.Nodes))
	if b.NodeCount != nil {
		nodeCount = *b.NodeCount
	}
	count, err := lbytes.EncodePackedInt(nodeCount)
	if err != nil {
		panic(fmt.Errorf("savtest.Builder.Tree: %w", err))
	}

	bs := append([]byte{}, treeMagic...)
	bs = append(bs, count...)
	for _, node := range b.Nodes {
		bs = append(bs, EncodeRecord(node)...)
	}
	return bs
}

func (b Builder) Trailer(treeOffset uint32) []byte {
	if b.TreeOffset != nil {
		treeOffset = *b.TreeOffset
	}
	trailerMagic := cfooter.TrailerMagicBytes
	if b.TrailerMagic != nil {
		trailerMagic = b.TrailerMagic
	}
	return append(lbytes.EncodeValueUInt(treeOffset), trailerMagic...)
}

func (b Builder) Build() []byte {
	bs := append([]byte{}, b.Payload...)
	treeOffset := uint32(len(bs))
	bs = append(bs, b.Tree()...)
	bs = append(bs, b.Trailer(treeOffset)...)
	return bs
}
