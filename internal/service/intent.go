package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

const intentPrompt = `You are extracting a search query from a student's learning goal.

Student's goal: "%s"

Extract the core academic topic(s) that would help this student meet their goal. Return ONLY a short search query (2-6 keywords, no explanation, no punctuation). Examples: "negotiations conflict resolution", "machine learning neural networks", "consulting strategy frameworks".

Search query:`

// IntentExtractor distills a free-text request into a short phrase
// suited for semantic search.
type IntentExtractor struct {
	gen domain.Generator
	log zerolog.Logger
}

// NewIntentExtractor creates an intent extractor over the given generator.
func NewIntentExtractor(gen domain.Generator, log zerolog.Logger) *IntentExtractor {
	return &IntentExtractor{gen: gen, log: log}
}

// Extract returns the search intent for a request. A failed or empty
// generation falls back to the raw request: weaker retrieval beats
// aborting the whole query over this stage.
func (e *IntentExtractor) Extract(ctx context.Context, request string) string {
	out, err := e.gen.Generate(ctx, fmt.Sprintf(intentPrompt, request))
	if err != nil {
		e.log.Warn().Err(err).Msg("intent extraction failed, using raw request")
		return request
	}
	intent := cleanIntent(out)
	if intent == "" {
		e.log.Warn().Msg("intent extraction returned nothing, using raw request")
		return request
	}
	return intent
}

// cleanIntent strips surrounding whitespace and quote marks models like
// to wrap short answers in.
func cleanIntent(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'`")
	return strings.TrimSpace(s)
}
