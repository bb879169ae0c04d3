package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theimaginaryfoundation/tuneprep/dataset/fileutils"
)

// SingleSplitFilename is the output name used for an anonymous split.
const SingleSplitFilename = "data.jsonl"

// WriteSplitJSONL writes a split as JSONL, one record per line, via an atomic
// temp-file rename.
func WriteSplitJSONL(path string, split *Split, overwrite bool) error {
	if path == "" {
		return errors.New("WriteSplitJSONL: path is empty")
	}
	if split == nil {
		return errors.New("WriteSplitJSONL: split is nil")
	}
	if !overwrite && fileutils.FileExists(path) {
		return fmt.Errorf("WriteSplitJSONL: file exists: %s", path)
	}

	var b strings.Builder
	for i, rec := range split.Records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("WriteSplitJSONL: marshal record %d: %w", i, err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}

	if err := fileutils.WriteFileAtomicSameDir(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("WriteSplitJSONL: write %s: %w", path, err)
	}
	return nil
}

// WriteCorpusJSONL writes each named split to <dir>/<name>.jsonl, or an
// anonymous split to <dir>/data.jsonl.
func WriteCorpusJSONL(dir string, corpus Corpus, overwrite bool) error {
	if dir == "" {
		return errors.New("WriteCorpusJSONL: dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("WriteCorpusJSONL: mkdir: %w", err)
	}

	if corpus.IsNamed() {
		for _, name := range corpus.SplitNames() {
			path := filepath.Join(dir, name+".jsonl")
			if err := WriteSplitJSONL(path, corpus.Split(name), overwrite); err != nil {
				return fmt.Errorf("WriteCorpusJSONL: split %q: %w", name, err)
			}
		}
		return nil
	}

	if corpus.Single() == nil {
		return errors.New("WriteCorpusJSONL: corpus has no splits")
	}
	return WriteSplitJSONL(filepath.Join(dir, SingleSplitFilename), corpus.Single(), overwrite)
}
