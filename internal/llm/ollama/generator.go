// Package ollama provides a text generation client backed by a local
// Ollama server.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

var _ domain.Generator = (*Generator)(nil)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "mistral"
	DefaultTimeout = 2 * time.Minute
)

// Config configures the Ollama generation client.
type Config struct {
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

// Generator produces completions via the Ollama generate API.
type Generator struct {
	client      *api.Client
	model       string
	temperature float64
}

// NewGenerator creates a generation client from the given configuration,
// applying defaults for any zero field.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL %q: %w", cfg.BaseURL, err)
	}
	return &Generator{
		client:      api.NewClient(base, &http.Client{Timeout: cfg.Timeout}),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Generate runs a single non-streaming completion for the prompt. An
// unreachable server surfaces ErrServiceUnavailable.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": g.temperature,
		},
	}

	var out strings.Builder
	err := g.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: generation via ollama: %v", domain.ErrServiceUnavailable, err)
	}
	return out.String(), nil
}

// ModelName returns the generation model identifier.
func (g *Generator) ModelName() string { return g.model }
