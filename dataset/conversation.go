package dataset

import "strings"

// Turn is one exchange in a dialogue log. The JSON keys follow the
// DialogStudio export schema, spaces included.
type Turn struct {
	UserUtterance  string `json:"user utterance"`
	SystemResponse string `json:"system response"`
}

// FormatConversation renders an ordered dialogue log as a flat transcript,
// two lines per turn:
//
//	user: <cleaned utterance>
//	agent: <cleaned response>
//
// Turns keep their original order; there is no trailing newline. An empty log
// yields an empty string.
func FormatConversation(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}
	lines := make([]string, 0, 2*len(turns))
	for _, t := range turns {
		lines = append(lines, "user: "+CleanText(t.UserUtterance))
		lines = append(lines, "agent: "+CleanText(t.SystemResponse))
	}
	return strings.Join(lines, "\n")
}
