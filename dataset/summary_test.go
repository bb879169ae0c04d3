package dataset

import (
	"errors"
	"testing"
)

func TestExtractSummary_JoinsFirstCandidate(t *testing.T) {
	t.Parallel()

	got, err := ExtractSummary(`{"summaries":{"abstractive_summaries":[["a","b"],["ignored"]]}}`)
	if err != nil {
		t.Fatalf("ExtractSummary: %v", err)
	}
	if got != "a b" {
		t.Fatalf("summary=%q, want %q", got, "a b")
	}
}

func TestExtractSummary_AbsentIsEmpty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"empty object", "{}"},
		{"no abstractive key", `{"summaries":{}}`},
		{"empty list", `{"summaries":{"abstractive_summaries":[]}}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractSummary(tc.in)
			if err != nil {
				t.Fatalf("ExtractSummary(%q): %v", tc.in, err)
			}
			if got != "" {
				t.Fatalf("summary=%q, want empty", got)
			}
		})
	}
}

func TestExtractSummary_MalformedJSON(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"not json", "", `{"summaries": [1,2]}`} {
		_, err := ExtractSummary(in)
		if err == nil {
			t.Fatalf("ExtractSummary(%q): expected error", in)
		}
		var malformed *MalformedMetadataError
		if !errors.As(err, &malformed) {
			t.Fatalf("ExtractSummary(%q): error %T, want *MalformedMetadataError", in, err)
		}
	}
}
