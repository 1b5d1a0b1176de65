// Package cstruct decodes a whole save into its node graph.
package cstruct

import (
	"cyber-savior/cpsav/cerr"
	"cyber-savior/cpsav/cfooter"
	"cyber-savior/cpsav/cnode"
	"cyber-savior/cpsav/lbytes"
	"cyber-savior/ds"
	"cyber-savior/logger"
	"github.com/pkg/errors"
)

// ToStructuredFile runs the decode stages in order: trailer, tree marker,
// node table, link validation. The first failing stage ends the decode and
// no partial Struct is returned.
func ToStructuredFile(bs []byte) (*Struct, error) {
	reader := lbytes.NewBytesReader(bs)
	file := Struct{}

	footer, err := cfooter.Decode(reader)
	if err != nil {
		return nil, err
	}
	file.Footer = *footer
	logger.Sugar.Infof("tree offset: %d", footer.TreeOffset)
	logger.Sugar.Debugf("footer: %s", ds.DumpJSON(file.Footer))

	if err := cfooter.LocateTree(reader, file.Footer); err != nil {
		return nil, err
	}

	file.Nodes, err = cnode.Decode(reader)
	if err != nil {
		return nil, err
	}
	file.Payload = bs

	return &file, nil
}

// NodeData returns the payload bytes of node index. The slice aliases
// Payload. An index outside Nodes is a malformed link, and a range that runs
// past the buffer is truncated input.
func (r Struct) NodeData(index int) ([]byte, error) {
	if index < 0 || index >= len(r.Nodes) {
		return nil, cerr.ErrMalformedLink{
			Caller:    "NodeData",
			NodeIndex: index,
			Field:     "index",
			Value:     int32(index),
			NodeCount: len(r.Nodes),
		}
	}
	node := r.Nodes[index]
	if node.DataEnd() > uint64(len(r.Payload)) {
		err := cerr.ErrTruncatedInput{
			Caller:    "NodeData",
			Wanted:    int(node.DataEnd()),
			Remaining: len(r.Payload),
		}
		return nil, errors.Wrapf(err, `NodeData error resolving node "%s"`, node.Name)
	}
	return r.Payload[node.DataOffset:node.DataEnd()], nil
}
