package dataset

import (
	"regexp"
	"strings"
)

var (
	// Drops URLs, @-mentions, and ^-signature tokens common in support-channel
	// exports (agents sign tweets with ^initials).
	noisePattern = regexp.MustCompile(`http\S+|@[^\s]+|\^[^ ]+`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// CleanText strips URL, mention, and caret tokens from a raw utterance and
// collapses every whitespace run to a single space, trimming the ends.
//
// It is total and idempotent: CleanText(CleanText(s)) == CleanText(s).
func CleanText(s string) string {
	s = noisePattern.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
