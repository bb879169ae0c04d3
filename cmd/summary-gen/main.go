package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/theimaginaryfoundation/tuneprep/dataset"
	"github.com/theimaginaryfoundation/tuneprep/dataset/fileutils"
	"github.com/theimaginaryfoundation/tuneprep/dataset/provider"
)

// sample is one output row: an instruction sample whose summary is either the
// reference from the record's metadata or a freshly generated one.
type sample struct {
	Conversation  string `json:"conversation"`
	Summary       string `json:"summary"`
	Text          string `json:"text"`
	SummarySource string `json:"summary_source"`
}

type summaryResponse struct {
	Summary string `json:"summary" jsonschema:"description=1-3 sentence abstractive summary of the conversation"`
}

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

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	if !cfg.Overwrite && fileutils.FileExists(cfg.OutPath) {
		fmt.Fprintf(os.Stderr, "output file already exists: %s\n", cfg.OutPath)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	split, err := dataset.LoadSplitFile(cfg.InPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	records := split.Records
	if cfg.MaxRecords > 0 && len(records) > cfg.MaxRecords {
		records = records[:cfg.MaxRecords]
	}

	schema, err := provider.GenerateSchema[summaryResponse]()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	gen := summaryGenerator{
		client: &client,
		model:  cfg.Model,
		schema: schema,
	}

	proc := dataset.Processor{SystemPrompt: cfg.SystemPrompt}
	samples := make([]sample, len(records))

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	errCh := make(chan error, len(records))
	var generated int64

	var wg sync.WaitGroup
	for i := range records {
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

			fields, err := proc.Process(records[i])
			if err != nil {
				errCh <- fmt.Errorf("record %d: %w", i, err)
				return
			}

			source := "reference"
			if strings.TrimSpace(fields.Summary) == "" {
				s, err := gen.Generate(ctx, fields.Text)
				if err != nil {
					errCh <- fmt.Errorf("record %d: generate summary: %w", i, err)
					return
				}
				fields.Summary = s
				fields.Text = dataset.BuildPrompt(cfg.SystemPrompt, fields.Conversation, s)
				source = "generated"
				atomic.AddInt64(&generated, 1)
			}

			samples[i] = sample{
				Conversation:  fields.Conversation,
				Summary:       fields.Summary,
				Text:          fields.Text,
				SummarySource: source,
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	var b strings.Builder
	for i := range samples {
		line, err := json.Marshal(samples[i])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("marshal sample %d: %w", i, err).Error())
			os.Exit(1)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	if err := fileutils.WriteFileAtomicSameDir(cfg.OutPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write %s: %w", cfg.OutPath, err).Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "records=%d generated=%d out=%s\n", len(samples), generated, cfg.OutPath)
}

type summaryGenerator struct {
	client *openai.Client
	model  string
	schema map[string]any
}

// Generate asks the model to fill the empty Response section of an
// instruction sample.
func (g summaryGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "DialogSummary",
			Schema:      g.schema,
			Strict:      openai.Bool(true),
			Description: openai.String("Dialog summary JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           g.model,
		MaxOutputTokens: openai.Int(400),
		Instructions:    openai.String(summaryGenInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(promptText, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := provider.CallWithRetry(ctx, g.client, params)
	if err != nil {
		return "", err
	}

	var out summaryResponse
	if err := fileutils.DecodeModelJSON(resp.OutputText(), &out); err != nil {
		return "", fmt.Errorf("unmarshal summary: %w", err)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return "", fmt.Errorf("model returned empty summary")
	}
	return strings.TrimSpace(out.Summary), nil
}
