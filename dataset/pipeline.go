package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/theimaginaryfoundation/tuneprep/dataset/tokenizer"
)

// Options configures one pipeline invocation. Every field is read-only while
// ProcessCorpus runs, so one Options value is safe to share across splits and
// across concurrently processed records.
type Options struct {
	// SystemPrompt is the instruction line baked into every sample.
	// Empty means DefaultSystemPrompt.
	SystemPrompt string

	// Seed drives the per-split shuffle. The same seed produces the same
	// order on every run, and each split is shuffled from a fresh source so
	// splits are independent of processing order.
	Seed int64

	// DropColumns names raw-schema fields removed from each record after
	// processing.
	DropColumns []string

	// Tokenizer, when non-nil, encodes each record's text field and merges
	// the returned token fields into the record.
	Tokenizer tokenizer.Tokenizer

	// Concurrency bounds how many records are processed at once within a
	// split. Zero or one means sequential.
	Concurrency int
}

// ProcessCorpus shuffles, maps, prunes, and optionally tokenizes every split
// of the corpus. The split-name structure and each split's record count are
// preserved; only field content changes.
//
// The first failing record aborts the whole invocation, with the split name
// and shuffled record index in the error. No partially processed corpus is
// ever returned: a skipped bad record would silently misalign dataset rows
// against any external indexing.
func ProcessCorpus(ctx context.Context, corpus Corpus, opts Options) (Corpus, error) {
	if ctx == nil {
		return Corpus{}, errors.New("ProcessCorpus: ctx is nil")
	}

	if corpus.IsNamed() {
		out := make(map[string]*Split, len(corpus.SplitNames()))
		for _, name := range corpus.SplitNames() {
			s, err := processSplit(ctx, corpus.Split(name), opts)
			if err != nil {
				return Corpus{}, fmt.Errorf("ProcessCorpus: split %q: %w", name, err)
			}
			out[name] = s
		}
		return NamedCorpus(out), nil
	}

	if corpus.Single() == nil {
		return Corpus{}, errors.New("ProcessCorpus: corpus has no splits")
	}
	s, err := processSplit(ctx, corpus.Single(), opts)
	if err != nil {
		return Corpus{}, fmt.Errorf("ProcessCorpus: %w", err)
	}
	return SingleCorpus(s), nil
}

func processSplit(ctx context.Context, split *Split, opts Options) (*Split, error) {
	shuffled := shuffleRecords(split.Records, opts.Seed)

	proc := Processor{SystemPrompt: opts.SystemPrompt}
	drop := make(map[string]struct{}, len(opts.DropColumns))
	for _, col := range opts.DropColumns {
		drop[col] = struct{}{}
	}

	out := make([]Record, len(shuffled))

	if opts.Concurrency <= 1 {
		for i := range shuffled {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rec, err := processRecord(shuffled[i], proc, drop, opts.Tokenizer)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = rec
		}
		return &Split{Records: out}, nil
	}

	sem := make(chan struct{}, opts.Concurrency)
	errCh := make(chan error, len(shuffled))
	var wg sync.WaitGroup
	for i := range shuffled {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			default:
			}

			rec, err := processRecord(shuffled[i], proc, drop, opts.Tokenizer)
			if err != nil {
				errCh <- fmt.Errorf("record %d: %w", i, err)
				return
			}
			out[i] = rec
		}(i)
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	return &Split{Records: out}, nil
}

// processRecord builds the output row for one raw record: processed fields
// plus retained raw fields, minus dropped columns, plus token fields.
func processRecord(rec Record, proc Processor, drop map[string]struct{}, tok tokenizer.Tokenizer) (Record, error) {
	fields, err := proc.Process(rec)
	if err != nil {
		return nil, err
	}

	out := make(Record, len(rec)+3)
	for k, v := range rec {
		if _, ok := drop[k]; ok {
			continue
		}
		out[k] = v
	}
	out[FieldConversation] = jsonString(fields.Conversation)
	out[FieldSummary] = jsonString(fields.Summary)
	out[FieldText] = jsonString(fields.Text)

	if tok != nil {
		enc, err := tok.Encode(fields.Text)
		if err != nil {
			return nil, fmt.Errorf("tokenize: %w", err)
		}
		for name, ids := range enc {
			b, err := json.Marshal(ids)
			if err != nil {
				return nil, fmt.Errorf("encode token field %q: %w", name, err)
			}
			out[name] = b
		}
	}
	return out, nil
}

// shuffleRecords returns a seeded Fisher-Yates permutation of records. The
// input slice is left untouched.
func shuffleRecords(records []Record, seed int64) []Record {
	out := append([]Record(nil), records...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func jsonString(s string) json.RawMessage {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshaling a Go string cannot fail.
		panic(err)
	}
	return b
}
