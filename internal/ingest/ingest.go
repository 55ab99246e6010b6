// Package ingest builds the vector index from a course catalog.
package ingest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

// SkippedRow records a catalog row that was left out of the index.
type SkippedRow struct {
	// Line is the 1-based data row number (header excluded).
	Line   int
	Code   string
	Reason string
}

// Report is the per-row outcome of an ingestion run.
type Report struct {
	Indexed int
	Skipped []SkippedRow
}

// Service embeds catalog rows and upserts them into the vector index.
type Service struct {
	embedder domain.Embedder
	index    domain.VectorIndex
	log      zerolog.Logger
}

// NewService creates an ingestion service.
func NewService(embedder domain.Embedder, index domain.VectorIndex, log zerolog.Logger) *Service {
	return &Service{embedder: embedder, index: index, log: log}
}

// Run ingests the given courses in order. Rows missing an identifier or
// description are skipped with a warning; the rest of the run continues.
// An embedding or index failure aborts the run, returning the partial
// report alongside the error. Re-running on an unchanged catalog yields
// an identical index: the course code is the upsert key.
func (s *Service) Run(ctx context.Context, courses []domain.Course) (*Report, error) {
	report := &Report{}

	if err := s.index.Init(ctx, s.embedder.Dimension()); err != nil {
		return report, fmt.Errorf("init index: %w", err)
	}

	for i, course := range courses {
		line := i + 1
		if reason := validate(course); reason != "" {
			s.log.Warn().
				Int("line", line).
				Str("code", course.Code).
				Str("reason", reason).
				Msg("skipping catalog row")
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Code: course.Code, Reason: reason})
			continue
		}

		vector, err := s.embedder.Embed(ctx, course.Document())
		if err != nil {
			return report, fmt.Errorf("embed course %q: %w", course.Code, err)
		}
		if err := s.index.Upsert(ctx, course.Code, vector, course); err != nil {
			return report, fmt.Errorf("index course %q: %w", course.Code, err)
		}
		report.Indexed++
		s.log.Debug().Str("code", course.Code).Msg("indexed course")
	}

	s.log.Info().
		Int("indexed", report.Indexed).
		Int("skipped", len(report.Skipped)).
		Msg("ingestion finished")
	return report, nil
}

func validate(course domain.Course) string {
	switch {
	case course.Code == "":
		return "missing course code"
	case course.Description == "":
		return "missing course description"
	default:
		return ""
	}
}
