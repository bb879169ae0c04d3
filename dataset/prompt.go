package dataset

import "strings"

// DefaultSystemPrompt is the instruction used when the caller does not supply
// one.
const DefaultSystemPrompt = "Summarize this conversation between a human and AI assistant, " +
	"capturing key points and maintaining context."

// BuildPrompt assembles the three-section instruction sample:
//
//	### Instruction: <systemPrompt>
//
//	### Input:
//	<conversation>
//
//	### Response:
//	<summary>
//
// When summary is empty after trimming, the response section is header-only
// (the string ends with "### Response:\n"), which makes the same template
// usable as a generation-time prompt.
func BuildPrompt(systemPrompt, conversation, summary string) string {
	var b strings.Builder
	b.WriteString("### Instruction: ")
	b.WriteString(systemPrompt)
	b.WriteString("\n\n### Input:\n")
	b.WriteString(conversation)
	b.WriteString("\n\n### Response:\n")
	if strings.TrimSpace(summary) != "" {
		b.WriteString(summary)
	}
	return b.String()
}
