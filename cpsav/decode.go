package cpsav

import (
	"cyber-savior/cpsav/caccount"
	"cyber-savior/cpsav/creport"
	"cyber-savior/cpsav/cstruct"
	"github.com/pkg/errors"
)

func Decode(bs []byte) (*cstruct.Struct, error) {
	file, err := cstruct.ToStructuredFile(bs)
	if err != nil {
		return nil, errors.Wrap(err, "cpsav.Decode error")
	}
	return file, nil
}

func Analyze(bs []byte) (*Analysis, error) {
	file, err := Decode(bs)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		File:       file,
		Accounting: caccount.Account(file.Nodes),
	}, nil
}

// Report decodes bs and renders the per node lines, or the fixed failure
// message when the save does not decode.
func Report(bs []byte) string {
	analysis, err := Analyze(bs)
	if err != nil {
		return creport.Format(nil, err)
	}
	return creport.Format(analysis.Accounting, nil)
}
