package domain

import "context"

// Embedder converts free text into a fixed-length vector representation.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dimension returns the dimensionality of produced vectors.
	Dimension() int
	// ModelName returns the embedding model identifier.
	ModelName() string
}

// Generator produces a text completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// VectorIndex persists course vectors and supports similarity search.
// Searching an empty index returns an empty result, not an error.
type VectorIndex interface {
	// Init prepares the index for vectors of the given dimension,
	// creating the backing collection if it does not exist yet.
	Init(ctx context.Context, dimension int) error
	// Upsert inserts or fully replaces the entry keyed by id.
	Upsert(ctx context.Context, id string, vector []float32, course Course) error
	// Search returns up to k matches ordered by descending similarity.
	Search(ctx context.Context, vector []float32, k int) ([]CourseMatch, error)
	// Count reports the number of stored entries.
	Count(ctx context.Context) (int, error)
	// Close releases resources.
	Close() error
}
