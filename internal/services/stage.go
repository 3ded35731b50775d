package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/studyflowhq/reviewerflow/internal/feature"
)

// Completer is the completion service a generation stage runs against. The
// returned text is untrusted: it may or may not be valid structured data.
type Completer interface {
	Complete(ctx context.Context, content, instructions string, temperature float32) (string, error)
}

// StripFences removes a leading/trailing code fence (optionally tagged json)
// and surrounding whitespace from model output. Applying it to already
// stripped text is a no-op.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// runStage performs one completion round-trip and parses the fence-stripped
// output into T. A fallback producer, when given, supplies replacement text
// if the model returns empty output; fallback text still goes through the
// same parse step. Parse failures are terminal for the stage — never retried.
func runStage[T any](ctx context.Context, c Completer, feat feature.Feature, stage, instructions, content string, temperature float32, fallback func() string) (T, error) {
	var zero T

	raw, err := c.Complete(ctx, content, instructions, temperature)
	if err != nil {
		return zero, fmt.Errorf("%s %s stage: completion failed: %w", feat, stage, err)
	}

	cleaned := StripFences(raw)
	if cleaned == "" && fallback != nil {
		slog.Warn("Empty model output, using stage fallback.", "feature", feat.String(), "stage", stage)
		cleaned = StripFences(fallback())
	}

	var out T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		slog.Error("Failed to parse model output.", "feature", feat.String(), "stage", stage, "error", err, "rawOutput", raw)
		return zero, &StageParseError{Feature: feat.String(), Stage: stage, RawOutput: raw, Err: err}
	}
	return out, nil
}

// contentPrompt frames raw study material as a stage's user content.
func contentPrompt(markdown string) string {
	return "Content to process:\n---\n" + markdown + "\n---"
}

// dataPrompt frames a prior stage's serialized result as a stage's user
// content.
func dataPrompt(serialized string) string {
	return "Here is the extracted data:\n---\n" + serialized + "\n---"
}
