package cstruct

import (
	"cyber-savior/cpsav/cfooter"
	"cyber-savior/cpsav/cnode"
)

type (
	// Struct is a decoded save. Nodes is in on-disk order, which is also
	// the index space of every NextIndex and ChildIndex. Payload is the
	// buffer the save was decoded from and is kept so that node data can be
	// resolved later; nothing in Struct is modified after decoding.
	Struct struct {
		Payload []byte         `json:"-"`
		Footer  cfooter.Footer `json:"footer"`
		Nodes   []cnode.Entry  `json:"nodes"`
	}
)
