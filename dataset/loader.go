package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadCorpus loads a corpus from disk. A path to a .json file (a top-level
// JSON array of records) loads a single anonymous split; a directory loads a
// named corpus from its <name>.json files, e.g. train.json and
// validation.json.
func LoadCorpus(path string) (Corpus, error) {
	if path == "" {
		return Corpus{}, errors.New("LoadCorpus: path is empty")
	}

	fi, err := os.Stat(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("LoadCorpus: stat input: %w", err)
	}

	if !fi.IsDir() {
		split, err := LoadSplitFile(path)
		if err != nil {
			return Corpus{}, err
		}
		return SingleCorpus(split), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("LoadCorpus: read dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return Corpus{}, fmt.Errorf("LoadCorpus: no .json split files in %s", path)
	}
	sort.Strings(names)

	splits := make(map[string]*Split, len(names))
	for _, name := range names {
		split, err := LoadSplitFile(filepath.Join(path, name))
		if err != nil {
			return Corpus{}, err
		}
		splits[strings.TrimSuffix(name, filepath.Ext(name))] = split
	}
	return NamedCorpus(splits), nil
}

// LoadSplitFile reads one split: a JSON array of records. It decodes the
// array element by element and never reads the whole file into memory at
// once.
func LoadSplitFile(path string) (*Split, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadSplitFile: open: %w", err)
	}
	defer f.Close()

	// Exports are often one huge line; use a larger buffer than default.
	dec := json.NewDecoder(bufio.NewReaderSize(f, 1<<20))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("LoadSplitFile: read first token of %s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("LoadSplitFile: %s: expected a JSON array of records, got %v", path, tok)
	}

	var records []Record
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("LoadSplitFile: %s: decode record %d: %w", path, len(records), err)
		}
		records = append(records, rec)
	}

	if tok, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("LoadSplitFile: %s: read closing array token: %w", path, err)
	} else if d, ok := tok.(json.Delim); !ok || d != ']' {
		return nil, fmt.Errorf("LoadSplitFile: %s: expected closing ']', got %v", path, tok)
	}

	return &Split{Records: records}, nil
}
