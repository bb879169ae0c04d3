package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/theimaginaryfoundation/tuneprep/dataset"
	"github.com/theimaginaryfoundation/tuneprep/dataset/tokenizer"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	corpus, err := dataset.LoadCorpus(cfg.InPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	opts := dataset.Options{
		SystemPrompt: cfg.SystemPrompt,
		Seed:         cfg.Seed,
		DropColumns:  dropColumnList(cfg.DropColumns),
		Concurrency:  cfg.Concurrency,
	}
	if cfg.Tokenize {
		tok, err := tokenizer.NewTiktoken(cfg.Encoding)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		opts.Tokenizer = tok
	}

	processed, err := dataset.ProcessCorpus(context.Background(), corpus, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := dataset.WriteCorpusJSONL(cfg.OutDir, processed, cfg.Overwrite); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "splits=%d records=%d tokenized=%t out=%s\n",
		splitCount(processed), recordCount(processed), cfg.Tokenize, cfg.OutDir)
}

func splitCount(c dataset.Corpus) int {
	if c.IsNamed() {
		return len(c.SplitNames())
	}
	return 1
}

func recordCount(c dataset.Corpus) int {
	if !c.IsNamed() {
		return len(c.Single().Records)
	}
	total := 0
	for _, name := range c.SplitNames() {
		total += len(c.Split(name).Records)
	}
	return total
}
