package cstruct

import (
	"errors"
	"testing"

	"cyber-savior/cpsav/cerr"
	"cyber-savior/cpsav/cnode"
	"cyber-savior/cpsav/savtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuilder() savtest.Builder {
	return savtest.Builder{
		Payload: []byte("0123456789abcdefghij"),
		Nodes: []savtest.Node{
			{Name: "root", NextIndex: -1, ChildIndex: 1, DataOffset: 0, DataSize: 20},
			{Name: "header", NextIndex: 2, ChildIndex: -1, DataOffset: 0, DataSize: 10},
			{Name: "body", NextIndex: -1, ChildIndex: -1, DataOffset: 10, DataSize: 10, UTF16: true},
		},
	}
}

func TestToStructuredFile(t *testing.T) {
	bs := sampleBuilder().Build()

	file, err := ToStructuredFile(bs)
	require.NoError(t, err)
	assert.Equal(t, uint32(20), file.Footer.TreeOffset)
	require.Len(t, file.Nodes, 3)
	assert.Equal(
		t,
		cnode.Entry{Name: "body", NextIndex: -1, ChildIndex: -1, DataOffset: 10, DataSize: 10},
		file.Nodes[2],
	)
	assert.Equal(t, bs, file.Payload)
}

func TestToStructuredFile_Errors(t *testing.T) {
	truncatedTable := sampleBuilder()
	truncatedTable.NodeCount = savtest.Int64(4)

	badTrailer := sampleBuilder()
	badTrailer.TrailerMagic = []byte("NODE")

	badTree := sampleBuilder()
	badTree.TreeOffset = savtest.UInt32(1)

	offsetPastEnd := sampleBuilder()
	offsetPastEnd.TreeOffset = savtest.UInt32(0xFFFFFF00)

	brokenLink := sampleBuilder()
	brokenLink.Nodes[1].NextIndex = 3

	negativeCount := sampleBuilder()
	negativeCount.NodeCount = savtest.Int64(-3)

	tests := map[string]struct {
		in   []byte
		kind cerr.Kind
	}{
		"empty buffer":        {[]byte{}, cerr.KindTruncatedInput},
		"trailer only":        {[]byte("ENOD"), cerr.KindTruncatedInput},
		"bad trailer marker":  {badTrailer.Build(), cerr.KindBadSignature},
		"bad tree marker":     {badTree.Build(), cerr.KindBadSignature},
		"tree offset too far": {offsetPastEnd.Build(), cerr.KindTruncatedInput},
		"missing record":      {truncatedTable.Build(), cerr.KindTruncatedInput},
		"broken link":         {brokenLink.Build(), cerr.KindMalformedLink},
		"negative count":      {negativeCount.Build(), cerr.KindNegativeCount},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			file, err := ToStructuredFile(test.in)
			assert.Nil(t, file)
			assert.Equal(t, test.kind, cerr.Classify(err), "error: %v", err)
		})
	}
}

func TestToStructuredFile_InvalidName(t *testing.T) {
	builder := savtest.Builder{Nodes: []savtest.Node{savtest.Leaf("root", 1)}}
	bs := builder.Build()
	// "root" is written as UTF-8 right after EDON and the count byte
	bs[6] = 0xFF

	_, err := ToStructuredFile(bs)
	var text cerr.ErrInvalidText
	require.True(t, errors.As(err, &text))
	assert.Equal(t, "UTF-8", text.Encoding)
}

func TestStruct_NodeData(t *testing.T) {
	file, err := ToStructuredFile(sampleBuilder().Build())
	require.NoError(t, err)

	data, err := file.NodeData(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)

	data, err = file.NodeData(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghij"), data)

	_, err = file.NodeData(3)
	assert.Equal(t, cerr.KindMalformedLink, cerr.Classify(err))
	_, err = file.NodeData(-1)
	assert.Equal(t, cerr.KindMalformedLink, cerr.Classify(err))

	file.Nodes = append(file.Nodes, cnode.Entry{Name: "far", DataOffset: 0xFFFFFFFF, DataSize: 0xFFFFFFFF})
	_, err = file.NodeData(3)
	assert.Equal(t, cerr.KindTruncatedInput, cerr.Classify(err))
}
