package dataset

import (
	"encoding/json"
	"fmt"
)

// Record is one dataset row: raw field names mapped to their still-encoded
// JSON values. Raw records are treated as immutable; processing builds new
// Records rather than mutating inputs.
type Record map[string]json.RawMessage

// Raw field names consumed by the processor.
const (
	FieldLog        = "log"
	FieldDialogInfo = "original dialog info"
)

// Field names the processor adds to each output record.
const (
	FieldConversation = "conversation"
	FieldSummary      = "summary"
	FieldText         = "text"
)

// DefaultDropColumns is the raw-schema column set usually removed after
// processing a DialogStudio TweetSumm export. The exact set is caller
// configuration; this is just the conventional one.
func DefaultDropColumns() []string {
	return []string{
		"original dialog id",
		"new dialog id",
		"dialog index",
		FieldDialogInfo,
		FieldLog,
		"prompt",
	}
}

// ProcessedFields are the three fields Process derives from one raw record.
type ProcessedFields struct {
	Conversation string
	Summary      string
	Text         string
}

// Processor turns one raw record into its processed fields. The zero value is
// usable and applies DefaultSystemPrompt.
type Processor struct {
	// SystemPrompt is the instruction line baked into every sample.
	SystemPrompt string
}

// Process formats the record's dialogue log into a transcript, extracts the
// reference summary from its dialog-info blob, and builds the instruction
// text. The text always embeds the transcript; the summary is included only
// when non-empty after trimming, so unlabeled records produce prompts ready
// for generation.
//
// A record without a log or dialog-info field fails with *MissingFieldError;
// dialog info that is not valid JSON fails with *MalformedMetadataError.
func (p Processor) Process(rec Record) (ProcessedFields, error) {
	rawLog, ok := rec[FieldLog]
	if !ok {
		return ProcessedFields{}, &MissingFieldError{Field: FieldLog}
	}
	rawInfo, ok := rec[FieldDialogInfo]
	if !ok {
		return ProcessedFields{}, &MissingFieldError{Field: FieldDialogInfo}
	}

	var turns []Turn
	if err := json.Unmarshal(rawLog, &turns); err != nil {
		return ProcessedFields{}, fmt.Errorf("decode %q: %w", FieldLog, err)
	}
	var infoJSON string
	if err := json.Unmarshal(rawInfo, &infoJSON); err != nil {
		return ProcessedFields{}, fmt.Errorf("decode %q: %w", FieldDialogInfo, err)
	}

	conversation := FormatConversation(turns)
	summary, err := ExtractSummary(infoJSON)
	if err != nil {
		return ProcessedFields{}, err
	}

	prompt := p.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	return ProcessedFields{
		Conversation: conversation,
		Summary:      summary,
		Text:         BuildPrompt(prompt, conversation, summary),
	}, nil
}
