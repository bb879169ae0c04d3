package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used when none is named.
const DefaultEncoding = "cl100k_base"

// Tiktoken encodes text with a tiktoken BPE encoding and emits the
// input_ids/attention_mask pair causal-LM trainers expect.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken loads the named encoding (e.g. "cl100k_base"). Loading the BPE
// ranks is the expensive step; construct once per pipeline, not per record.
func NewTiktoken(encoding string) (*Tiktoken, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("NewTiktoken: load encoding %q: %w", encoding, err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Encode tokenizes text without special-token handling. The attention mask is
// all ones; padding is a collator concern, not a dataset one.
func (t *Tiktoken) Encode(text string) (Result, error) {
	ids := t.enc.EncodeOrdinary(text)
	mask := make([]int, len(ids))
	for i := range mask {
		mask[i] = 1
	}
	return Result{
		"input_ids":      ids,
		"attention_mask": mask,
	}, nil
}
