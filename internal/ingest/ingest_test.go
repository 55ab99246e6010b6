package ingest

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/vectorstore/memory"
)

// hashEmbedder maps tokens into fixed buckets. Deterministic, so the
// same text always embeds to the same vector, and overlapping texts get
// a real cosine similarity.
type hashEmbedder struct {
	dim  int
	fail bool
}

func (e *hashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if e.fail {
		return nil, domain.ErrServiceUnavailable
	}
	vec := make([]float32, e.dim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(strings.Trim(tok, ".,:")))
		vec[h.Sum32()%uint32(e.dim)]++
	}
	return vec, nil
}

func (e *hashEmbedder) Dimension() int    { return e.dim }
func (e *hashEmbedder) ModelName() string { return "hash-test" }

func testCourses() []domain.Course {
	return []domain.Course{
		{Code: "CS101", Description: "Intro to machine learning", Semester: "Fall", Instructor: "Dr. Li"},
		{Code: "", Description: "Orphaned row", Semester: "Fall", Instructor: "Dr. Gone"},
		{Code: "MKT200", Description: "", Semester: "Winter", Instructor: "Dr. Okafor"},
		{Code: "CS201", Description: "Advanced algorithms", Semester: "Winter", Instructor: "Dr. Li"},
	}
}

func TestRun_SkipsInvalidRows(t *testing.T) {
	idx := memory.NewIndex()
	svc := NewService(&hashEmbedder{dim: 16}, idx, zerolog.Nop())

	report, err := svc.Run(context.Background(), testCourses())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Indexed)
	require.Len(t, report.Skipped, 2)
	assert.Equal(t, 2, report.Skipped[0].Line)
	assert.Equal(t, "missing course code", report.Skipped[0].Reason)
	assert.Equal(t, 3, report.Skipped[1].Line)
	assert.Equal(t, "MKT200", report.Skipped[1].Code)
	assert.Equal(t, "missing course description", report.Skipped[1].Reason)

	count, err := idx.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRun_Idempotent(t *testing.T) {
	idx := memory.NewIndex()
	svc := NewService(&hashEmbedder{dim: 16}, idx, zerolog.Nop())
	courses := testCourses()

	_, err := svc.Run(context.Background(), courses)
	require.NoError(t, err)
	first := idx.Vector("CS101")
	require.NotNil(t, first)

	report, err := svc.Run(context.Background(), courses)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Indexed)

	count, err := idx.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count, "re-ingesting must not duplicate entries")
	assert.Equal(t, first, idx.Vector("CS101"))
}

func TestRun_EmbedFailureAbortsWithPartialReport(t *testing.T) {
	idx := memory.NewIndex()
	emb := &hashEmbedder{dim: 16}
	svc := NewService(emb, idx, zerolog.Nop())

	courses := []domain.Course{
		{Code: "CS101", Description: "Intro to machine learning"},
		{Code: "CS201", Description: "Advanced algorithms"},
	}
	_, err := svc.Run(context.Background(), courses[:1])
	require.NoError(t, err)

	emb.fail = true
	report, err := svc.Run(context.Background(), courses)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "CS101")
	assert.Equal(t, 0, report.Indexed)
}

func TestRun_EmptyCatalog(t *testing.T) {
	idx := memory.NewIndex()
	svc := NewService(&hashEmbedder{dim: 16}, idx, zerolog.Nop())

	report, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Indexed)
	assert.Empty(t, report.Skipped)
}

func TestRun_IndexInitFailure(t *testing.T) {
	idx := memory.NewIndex()
	require.NoError(t, idx.Init(context.Background(), 8))
	require.NoError(t, idx.Upsert(context.Background(), "CS101", make([]float32, 8), domain.Course{Code: "CS101"}))

	// A 16-dim embedder against an 8-dim populated index must refuse.
	svc := NewService(&hashEmbedder{dim: 16}, idx, zerolog.Nop())
	_, err := svc.Run(context.Background(), testCourses())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchemaMismatch))
}
