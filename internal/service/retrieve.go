package service

import (
	"context"
	"fmt"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

// Retriever finds the catalog entries closest to a search intent.
type Retriever struct {
	embedder domain.Embedder
	index    domain.VectorIndex
}

// NewRetriever creates a retriever over the given embedder and index.
func NewRetriever(embedder domain.Embedder, index domain.VectorIndex) *Retriever {
	return &Retriever{embedder: embedder, index: index}
}

// Retrieve embeds the intent and returns up to k matches in descending
// similarity order. Zero matches is a valid outcome, not an error; only
// an unreachable embedder or index fails.
func (r *Retriever) Retrieve(ctx context.Context, intent string, k int) ([]domain.CourseMatch, error) {
	vector, err := r.embedder.Embed(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("embed intent: %w", err)
	}
	matches, err := r.index.Search(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	return matches, nil
}
