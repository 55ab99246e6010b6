// Package memory provides an in-memory vector index using brute-force
// cosine similarity. Used for tests and small local catalogs.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

var _ domain.VectorIndex = (*Index)(nil)

type entry struct {
	vector []float32
	course domain.Course
}

// Index stores vectors keyed by course identifier. Insertion order is
// remembered so equal-score results rank in the order they were first
// ingested.
type Index struct {
	mu        sync.RWMutex
	dimension int
	entries   map[string]*entry
	order     []string
}

// NewIndex creates an empty in-memory index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]*entry)}
}

// Init fixes the vector dimension. Re-initializing with a different
// dimension than already-stored vectors fails with ErrSchemaMismatch.
func (x *Index) Init(_ context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.dimension != 0 && x.dimension != dimension && len(x.entries) > 0 {
		return fmt.Errorf("%w: index holds %d-dim vectors, requested %d",
			domain.ErrSchemaMismatch, x.dimension, dimension)
	}
	x.dimension = dimension
	return nil
}

// Upsert inserts or fully replaces the entry keyed by id.
func (x *Index) Upsert(_ context.Context, id string, vector []float32, course domain.Course) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.dimension == 0 {
		return fmt.Errorf("index not initialized")
	}
	if len(vector) != x.dimension {
		return fmt.Errorf("%w: got %d, index expects %d",
			domain.ErrSchemaMismatch, len(vector), x.dimension)
	}
	if _, ok := x.entries[id]; !ok {
		x.order = append(x.order, id)
	}
	vec := make([]float32, len(vector))
	copy(vec, vector)
	x.entries[id] = &entry{vector: vec, course: course}
	return nil
}

// Search returns up to k matches by descending cosine similarity. An
// empty index yields an empty result.
func (x *Index) Search(_ context.Context, vector []float32, k int) ([]domain.CourseMatch, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if k <= 0 {
		k = 1
	}
	matches := make([]domain.CourseMatch, 0, len(x.order))
	for _, id := range x.order {
		e := x.entries[id]
		matches = append(matches, domain.CourseMatch{
			Course: e.course,
			Score:  cosine(e.vector, vector),
		})
	}
	// Stable keeps insertion order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k], nil
}

// Count reports the number of stored entries.
func (x *Index) Count(_ context.Context) (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries), nil
}

// Close is a no-op for the in-memory index.
func (x *Index) Close() error { return nil }

// Vector returns a copy of the stored vector for id, or nil if absent.
// Used by ingestion tests to assert idempotence.
func (x *Index) Vector(id string) []float32 {
	x.mu.RLock()
	defer x.mu.RUnlock()
	e, ok := x.entries[id]
	if !ok {
		return nil
	}
	out := make([]float32, len(e.vector))
	copy(out, e.vector)
	return out
}

func cosine(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
