// Package ollama provides an embedder backed by a local Ollama server.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

var _ domain.Embedder = (*Embedder)(nil)

// Defaults match nomic-embed-text, the model the index was tuned for.
const (
	DefaultBaseURL   = "http://localhost:11434"
	DefaultModel     = "nomic-embed-text"
	DefaultDimension = 768
	DefaultTimeout   = 30 * time.Second
)

// Config configures the Ollama embedder.
type Config struct {
	BaseURL   string
	Model     string
	Dimension int
	Timeout   time.Duration
}

// Embedder generates embeddings via the Ollama embeddings API.
type Embedder struct {
	client     *api.Client
	model      string
	dimension  int
	maxRetries int
}

// NewEmbedder creates an embedder from the given configuration, applying
// defaults for any zero field.
func NewEmbedder(cfg Config) (*Embedder, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Dimension == 0 {
		cfg.Dimension = DefaultDimension
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL %q: %w", cfg.BaseURL, err)
	}
	return &Embedder{
		client:     api.NewClient(base, &http.Client{Timeout: cfg.Timeout}),
		model:      cfg.Model,
		dimension:  cfg.Dimension,
		maxRetries: 3,
	}, nil
}

// Embed returns the embedding vector for the given text. Transient
// failures are retried with exponential backoff; a server that stays
// unreachable or returns an empty vector surfaces ErrServiceUnavailable.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay(attempt - 1)):
			}
		}
		resp, err := e.client.Embeddings(ctx, &api.EmbeddingRequest{
			Model:  e.model,
			Prompt: text,
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Embedding) == 0 {
			lastErr = fmt.Errorf("model %s returned empty embedding", e.model)
			continue
		}
		vec := make([]float32, len(resp.Embedding))
		for i, v := range resp.Embedding {
			vec[i] = float32(v)
		}
		return vec, nil
	}
	return nil, fmt.Errorf("%w: embedding via ollama: %v", domain.ErrServiceUnavailable, lastErr)
}

// Dimension returns the configured embedding dimensionality.
func (e *Embedder) Dimension() int { return e.dimension }

// ModelName returns the embedding model identifier.
func (e *Embedder) ModelName() string { return e.model }

func retryDelay(attempt int) time.Duration {
	base := 200 * time.Millisecond
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
