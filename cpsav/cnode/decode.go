// Package cnode reads the node table that follows the "EDON" marker: a
// packed node count and that many fixed-shape records.
package cnode

import (
	"cyber-savior/cpsav/cerr"
	"cyber-savior/cpsav/lbytes"
	"cyber-savior/ds"
	"cyber-savior/logger"
	"github.com/pkg/errors"
)

func DecodeCount(reader *lbytes.Reader) (int64, error) {
	count, err := reader.ReadPackedInt()
	if err != nil {
		return 0, errors.Wrap(err, "DecodeCount error")
	}
	if count < 0 {
		return 0, cerr.ErrNegativeCount{
			Caller: "DecodeCount",
			Count:  count,
		}
	}
	return count, nil
}

func DecodeEntry(reader *lbytes.Reader) (*Entry, error) {
	readName := lbytes.CreatePrefixedStringReadFunction(reader)
	readInt := lbytes.CreateIntReadFunction(reader)
	readUInt := lbytes.CreateUIntReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: readName},
		{Key: "next_index", ReadFunction: readInt},
		{Key: "child_index", ReadFunction: readInt},
		{Key: "data_offset", ReadFunction: readUInt},
		{Key: "data_size", ReadFunction: readUInt},
	}
	entry, err := lbytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

// DecodeBlock reads numEntries records. Any failure discards the records
// read so far. The declared count only sizes the result up to what the
// remaining bytes could possibly hold.
func DecodeBlock(reader *lbytes.Reader, numEntries int64) ([]Entry, error) {
	capacity := int64(reader.Len() / MinEntrySize)
	if numEntries < capacity {
		capacity = numEntries
	}
	entries := make([]Entry, 0, capacity)
	for i := int64(0); i < numEntries; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "cnode.DecodeBlock error reading node %d of %d", i, numEntries)
			return nil, err
		}
		if entry == nil {
			return nil, ds.ErrUnreachableCode{Caller: "cnode.DecodeBlock"}
		}
		logger.Sugar.Debugf(
			"node %d: name=%q next=%d child=%d offset=%d size=%d",
			i, entry.Name, entry.NextIndex, entry.ChildIndex, entry.DataOffset, entry.DataSize,
		)
		entries = append(entries, *entry)
	}

	return entries, nil
}

// Decode reads the node count and the records behind it, then checks every
// link. The reader must sit right after the tree marker.
func Decode(reader *lbytes.Reader) ([]Entry, error) {
	numEntries, err := DecodeCount(reader)
	if err != nil {
		return nil, errors.Wrap(err, "cnode.Decode error")
	}
	logger.Sugar.Infof("node count: %d", numEntries)

	entries, err := DecodeBlock(reader, numEntries)
	if err != nil {
		return nil, err
	}
	if err := ValidateLinks(entries); err != nil {
		return nil, errors.Wrap(err, "cnode.Decode error")
	}

	return entries, nil
}
