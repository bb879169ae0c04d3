package dataset

import (
	"encoding/json"
	"strings"
)

type dialogInfo struct {
	Summaries struct {
		AbstractiveSummaries [][]string `json:"abstractive_summaries"`
	} `json:"summaries"`
}

// ExtractSummary recovers the reference summary from a record's
// "original dialog info" JSON blob. Only the first abstractive summary is a
// candidate; its sentence fragments are joined with single spaces.
//
// A missing summaries key or an empty abstractive_summaries list is a valid
// no-summary outcome and returns "". Input that does not parse as the
// expected JSON shape returns a *MalformedMetadataError.
func ExtractSummary(dialogInfoJSON string) (string, error) {
	var info dialogInfo
	if err := json.Unmarshal([]byte(dialogInfoJSON), &info); err != nil {
		return "", &MalformedMetadataError{Err: err}
	}
	abstractive := info.Summaries.AbstractiveSummaries
	if len(abstractive) == 0 {
		return "", nil
	}
	return strings.Join(abstractive[0], " "), nil
}
