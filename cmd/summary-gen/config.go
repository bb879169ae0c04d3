package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/theimaginaryfoundation/tuneprep/dataset"
)

type Config struct {
	InPath       string
	OutPath      string
	Model        string
	APIKey       string
	SystemPrompt string
	MaxRecords   int
	Concurrency  int
	Overwrite    bool
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	if c.OutPath == "" {
		return errors.New("missing -out")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.MaxRecords < 0 {
		return errors.New("max-records must be >= 0")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Model:        "gpt-5-mini",
		SystemPrompt: dataset.DefaultSystemPrompt,
		Concurrency:  4,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InPath, "in", "", "Path to a split JSON file (array of raw records)")
	fs.StringVar(&cfg.OutPath, "out", "", "Output JSONL path for samples with backfilled summaries")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model to use (e.g. gpt-5-mini)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.StringVar(&cfg.SystemPrompt, "system-prompt", cfg.SystemPrompt, "Instruction line baked into every sample")
	fs.IntVar(&cfg.MaxRecords, "max-records", 0, "Process only the first N records (0 = all)")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max concurrent summary generations")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite an existing output file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.InPath != "" {
		cfg.InPath = filepath.Clean(cfg.InPath)
	}
	if cfg.OutPath != "" {
		cfg.OutPath = filepath.Clean(cfg.OutPath)
	}
	return cfg, nil
}
