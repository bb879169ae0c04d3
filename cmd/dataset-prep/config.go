package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/theimaginaryfoundation/tuneprep/dataset"
)

type Config struct {
	InPath       string
	OutDir       string
	SystemPrompt string
	Seed         int64
	DropColumns  string
	Tokenize     bool
	Encoding     string
	Concurrency  int
	Overwrite    bool
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	if c.OutDir == "" {
		return errors.New("missing -out")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		SystemPrompt: dataset.DefaultSystemPrompt,
		Seed:         42,
		DropColumns:  "default",
		Encoding:     "cl100k_base",
		Concurrency:  1,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InPath, "in", "", "Path to a split JSON file OR a directory of <name>.json split files")
	fs.StringVar(&cfg.OutDir, "out", "", "Output directory for processed <name>.jsonl files")
	fs.StringVar(&cfg.SystemPrompt, "system-prompt", cfg.SystemPrompt, "Instruction line baked into every sample")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Shuffle seed (same seed, same order)")
	fs.StringVar(&cfg.DropColumns, "drop-columns", cfg.DropColumns, "Comma-separated raw columns to drop ('default' = TweetSumm set, 'none' = keep all)")
	fs.BoolVar(&cfg.Tokenize, "tokenize", false, "Tokenize each sample's text field")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "tiktoken encoding used with -tokenize")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max records processed concurrently within a split")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite existing output files")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.InPath != "" {
		cfg.InPath = filepath.Clean(cfg.InPath)
	}
	if cfg.OutDir != "" {
		cfg.OutDir = filepath.Clean(cfg.OutDir)
	}
	return cfg, nil
}

// dropColumnList expands the -drop-columns flag value. "default" means the
// conventional TweetSumm set, "none" keeps everything.
func dropColumnList(v string) []string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "default":
		return dataset.DefaultDropColumns()
	case "none":
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
