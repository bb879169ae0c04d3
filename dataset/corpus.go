package dataset

import "sort"

// Split is an ordered collection of records.
type Split struct {
	Records []Record
}

// Corpus is either one anonymous split or a set of named splits
// (train/validation/test). Exactly one of the two forms is populated.
type Corpus struct {
	single *Split
	named  map[string]*Split
}

// SingleCorpus wraps one anonymous split.
func SingleCorpus(s *Split) Corpus {
	return Corpus{single: s}
}

// NamedCorpus wraps a set of named splits.
func NamedCorpus(splits map[string]*Split) Corpus {
	return Corpus{named: splits}
}

// IsNamed reports whether the corpus carries named splits.
func (c Corpus) IsNamed() bool { return c.named != nil }

// Single returns the anonymous split, or nil for a named corpus.
func (c Corpus) Single() *Split { return c.single }

// Split returns the split with the given name, or nil.
func (c Corpus) Split(name string) *Split { return c.named[name] }

// SplitNames returns the split names in sorted order. A single-split corpus
// has none.
func (c Corpus) SplitNames() []string {
	if len(c.named) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.named))
	for name := range c.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
