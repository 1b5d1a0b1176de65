// Package cpsav decodes CDPR "sav.dat" saves and accounts for the bytes of
// every node in their node tree.
//
// Decoding happens in stages (trailer, tree marker, node table, links) and
// stops at the first structural error. Accounting never fails as a whole; a
// node whose numbers do not add up is flagged and the rest are still
// reported.
package cpsav

import (
	"cyber-savior/cpsav/caccount"
	"cyber-savior/cpsav/cfooter"
	"cyber-savior/cpsav/cstruct"
)

type (
	Analysis struct {
		File       *cstruct.Struct      `json:"file"`
		Accounting *caccount.Accounting `json:"accounting"`
	}
)

// IsSaveFile only looks at the trailer marker. A true result does not mean
// the save decodes.
func IsSaveFile(bs []byte) bool {
	return cfooter.IsValidTrailer(bs)
}
