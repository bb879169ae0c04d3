// Package tokenizer defines the capability the dataset pipeline needs from a
// tokenizer, plus a tiktoken-backed implementation.
package tokenizer

// Result maps token field names (e.g. "input_ids", "attention_mask") to
// integer sequences. The pipeline treats it as opaque passthrough and merges
// the fields into the processed record.
type Result map[string][]int

// Tokenizer converts prompt text into model-ready token fields. Encode is
// expected to be stateless and side-effect free; any expensive setup (such as
// loading a vocabulary) belongs in construction.
type Tokenizer interface {
	Encode(text string) (Result, error)
}
