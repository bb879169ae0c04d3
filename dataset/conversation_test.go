package dataset

import (
	"strings"
	"testing"
)

func TestFormatConversation_TwoLinesPerTurn(t *testing.T) {
	t.Parallel()

	turns := []Turn{
		{UserUtterance: "Hi there", SystemResponse: "Hello"},
		{UserUtterance: "My order is late", SystemResponse: "Let me check"},
		{UserUtterance: "Thanks", SystemResponse: "Anytime"},
	}

	got := FormatConversation(turns)
	lines := strings.Split(got, "\n")
	if len(lines) != 2*len(turns) {
		t.Fatalf("len(lines)=%d, want %d", len(lines), 2*len(turns))
	}
	if lines[0] != "user: Hi there" || lines[1] != "agent: Hello" {
		t.Fatalf("first turn lines=%q/%q", lines[0], lines[1])
	}
	if lines[4] != "user: Thanks" || lines[5] != "agent: Anytime" {
		t.Fatalf("last turn lines=%q/%q", lines[4], lines[5])
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("transcript has a trailing newline: %q", got)
	}
}

func TestFormatConversation_CleansUtterances(t *testing.T) {
	t.Parallel()

	got := FormatConversation([]Turn{
		{UserUtterance: "Hi http://x.com", SystemResponse: "Hello @bob"},
	})
	want := "user: Hi\nagent: Hello"
	if got != want {
		t.Fatalf("FormatConversation=%q, want %q", got, want)
	}
}

func TestFormatConversation_Empty(t *testing.T) {
	t.Parallel()

	if got := FormatConversation(nil); got != "" {
		t.Fatalf("FormatConversation(nil)=%q, want \"\"", got)
	}
	if got := FormatConversation([]Turn{}); got != "" {
		t.Fatalf("FormatConversation([])=%q, want \"\"", got)
	}
}
