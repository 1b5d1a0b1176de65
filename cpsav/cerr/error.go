// Package cerr holds the error kinds a save decode can fail with.
//
// Every kind is a struct carrying the name of the function that raised it,
// the same way ds.ErrUnreachableCode does. Callers match them through any
// number of errors.Wrap layers with errors.As.
package cerr

import (
	"errors"
	"fmt"
)

type (
	// ErrTruncatedInput means the buffer ended before a required field.
	ErrTruncatedInput struct {
		Caller    string
		Wanted    int
		Remaining int
	}
	// ErrBadSignature means a footer or tree marker did not match.
	ErrBadSignature struct {
		Caller   string
		Expected []byte
		Actual   []byte
	}
	// ErrInvalidText means a prefixed string payload is not valid in the
	// encoding its length prefix selected.
	ErrInvalidText struct {
		Caller   string
		Encoding string
	}
	// ErrMalformedLink means a next/child index is neither the sentinel nor
	// a valid node index, or a sibling chain loops back on itself.
	ErrMalformedLink struct {
		Caller    string
		NodeIndex int
		Field     string
		Value     int32
		NodeCount int
	}
	// ErrInconsistentAccounting means the immediate children of a node
	// declare more bytes than the node itself.
	ErrInconsistentAccounting struct {
		Caller    string
		NodeIndex int
		DataSize  uint32
		ChildSum  uint64
	}
	// ErrNegativeCount means the node table declared a negative node count.
	ErrNegativeCount struct {
		Caller string
		Count  int64
	}
	// ErrPackedIntOverflow means a value has more magnitude bits than a
	// packed integer can carry.
	ErrPackedIntOverflow struct {
		Caller string
		Value  int64
	}
)

func (r ErrTruncatedInput) Error() string {
	return fmt.Sprintf(
		"%s: truncated input: wanted %d bytes, %d remaining",
		r.Caller, r.Wanted, r.Remaining,
	)
}

func (r ErrBadSignature) Error() string {
	return fmt.Sprintf("%s: bad signature: expected %q, got %q", r.Caller, r.Expected, r.Actual)
}

func (r ErrInvalidText) Error() string {
	return fmt.Sprintf("%s: invalid %s text", r.Caller, r.Encoding)
}

func (r ErrMalformedLink) Error() string {
	return fmt.Sprintf(
		"%s: malformed link: node %d has %s = %d with %d nodes",
		r.Caller, r.NodeIndex, r.Field, r.Value, r.NodeCount,
	)
}

func (r ErrInconsistentAccounting) Error() string {
	return fmt.Sprintf(
		"%s: inconsistent accounting: node %d declares %d bytes but its children declare %d",
		r.Caller, r.NodeIndex, r.DataSize, r.ChildSum,
	)
}

func (r ErrNegativeCount) Error() string {
	return fmt.Sprintf("%s: negative node count %d", r.Caller, r.Count)
}

func (r ErrPackedIntOverflow) Error() string {
	return fmt.Sprintf("%s: value %d does not fit in a packed integer", r.Caller, r.Value)
}

type Kind string

const (
	KindNone                   = Kind("")
	KindUnknown                = Kind("unknown")
	KindTruncatedInput         = Kind("truncated_input")
	KindBadSignature           = Kind("bad_signature")
	KindInvalidText            = Kind("invalid_text")
	KindMalformedLink          = Kind("malformed_link")
	KindInconsistentAccounting = Kind("inconsistent_accounting")
	KindNegativeCount          = Kind("negative_count")
	KindPackedIntOverflow      = Kind("packed_int_overflow")
)

// Classify reports which kind of failure err carries. Wrapped errors are
// unwrapped first.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		truncated  ErrTruncatedInput
		signature  ErrBadSignature
		text       ErrInvalidText
		link       ErrMalformedLink
		accounting ErrInconsistentAccounting
		negative   ErrNegativeCount
		overflow   ErrPackedIntOverflow
	)
	switch {
	case errors.As(err, &truncated):
		return KindTruncatedInput
	case errors.As(err, &signature):
		return KindBadSignature
	case errors.As(err, &text):
		return KindInvalidText
	case errors.As(err, &link):
		return KindMalformedLink
	case errors.As(err, &accounting):
		return KindInconsistentAccounting
	case errors.As(err, &negative):
		return KindNegativeCount
	case errors.As(err, &overflow):
		return KindPackedIntOverflow
	default:
		return KindUnknown
	}
}

// Describe turns a kind into a short sentence for people reading a report.
func Describe(kind Kind) string {
	switch kind {
	case KindBadSignature:
		return "not a save file"
	case KindTruncatedInput:
		return "the save file is truncated"
	case KindInvalidText:
		return "the save file contains an unreadable node name"
	case KindMalformedLink, KindNegativeCount:
		return "the save file has a corrupt node table"
	case KindInconsistentAccounting:
		return "the save file is internally inconsistent"
	default:
		return "unexpected error"
	}
}
