// Package creport renders an accounting as text for people.
package creport

import (
	"fmt"
	"strings"

	"cyber-savior/cpsav/caccount"
	"cyber-savior/cpsav/cerr"
	"github.com/samber/lo"
)

const (
	FailureMessage = "Could not load save"
	ReadFailure    = "Could not read file"
)

func FormatLine(entry caccount.Entry) string {
	line := fmt.Sprintf("%s: %d own bytes, %d total bytes", entry.Name, entry.OwnBytes, entry.TotalBytes)
	if entry.IsFlagged() {
		line += fmt.Sprintf(" (%s)", cerr.Classify(entry.Err))
	}
	return line
}

func FormatLines(accounting *caccount.Accounting) []string {
	return lo.Map(
		accounting.Values(),
		func(entry caccount.Entry, _ int) string {
			return FormatLine(entry)
		},
	)
}

// Format is the whole report, one line per node in table order. A failed
// decode turns into FailureMessage alone.
func Format(accounting *caccount.Accounting, err error) string {
	if err != nil || accounting == nil {
		return FailureMessage
	}
	var sb strings.Builder
	for _, line := range FormatLines(accounting) {
		sb.WriteString(line)
		sb.WriteRune('\n')
	}
	return sb.String()
}

// FormatFailure is FailureMessage with a short reason attached.
func FormatFailure(err error) string {
	return FailureMessage + ": " + cerr.Describe(cerr.Classify(err))
}
