package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

func TestExtract_Success(t *testing.T) {
	gen := &stubGenerator{reply: func(string) (string, error) {
		return "  negotiations conflict resolution\n", nil
	}}
	e := NewIntentExtractor(gen, zerolog.Nop())

	intent := e.Extract(context.Background(), "I want to get better at negotiating")
	assert.Equal(t, "negotiations conflict resolution", intent)
}

func TestExtract_StripsQuotes(t *testing.T) {
	gen := &stubGenerator{reply: func(string) (string, error) {
		return `"machine learning neural networks"`, nil
	}}
	e := NewIntentExtractor(gen, zerolog.Nop())

	intent := e.Extract(context.Background(), "teach me ML")
	assert.Equal(t, "machine learning neural networks", intent)
}

func TestExtract_GeneratorErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: func(string) (string, error) {
		return "", domain.ErrServiceUnavailable
	}}
	e := NewIntentExtractor(gen, zerolog.Nop())

	intent := e.Extract(context.Background(), "I want to learn consulting")
	assert.Equal(t, "I want to learn consulting", intent)
}

func TestExtract_EmptyOutputFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: func(string) (string, error) {
		return "  \"\" ", nil
	}}
	e := NewIntentExtractor(gen, zerolog.Nop())

	intent := e.Extract(context.Background(), "I want to learn consulting")
	assert.Equal(t, "I want to learn consulting", intent)
}

func TestExtract_PromptCarriesRequest(t *testing.T) {
	gen := &stubGenerator{reply: func(string) (string, error) {
		return "strategy frameworks", nil
	}}
	e := NewIntentExtractor(gen, zerolog.Nop())

	e.Extract(context.Background(), "break into consulting")
	assert.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "break into consulting")
}
