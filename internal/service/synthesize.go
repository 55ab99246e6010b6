package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

// NoMatchMessage is returned verbatim when retrieval produced nothing.
// Synthesizing over an empty result set would only invite the model to
// invent courses.
const NoMatchMessage = "No matching courses found."

const synthesisPrompt = `You are a warm, knowledgeable academic advisor. A student has shared a learning goal with you, and you have found courses that can help them achieve it. Write a concise, encouraging recommendation that references specific course codes from the list. Keep it conversational — no long bullet lists. End with an invitation to refine the goal.

Student's learning goal: %s

Matching courses:
%s

Recommendation:`

const explainPrompt = `A student's learning goal: "%s"

Course being considered:
- Code: %s
- Description: %s
- Semester: %s
- Instructor: %s

In 1-2 sentences, explain specifically how this course helps the student achieve their goal. Be concrete — reference the student's goal and the course content. Do not start with "This course".

Explanation:`

// Synthesizer turns retrieved matches into a natural-language
// recommendation.
type Synthesizer struct {
	gen domain.Generator
	log zerolog.Logger
}

// NewSynthesizer creates a synthesizer over the given generator.
func NewSynthesizer(gen domain.Generator, log zerolog.Logger) *Synthesizer {
	return &Synthesizer{gen: gen, log: log}
}

// Synthesize produces the recommendation text for the request. When
// matches is empty the generator is not called at all and the fixed
// no-match message is returned.
func (s *Synthesizer) Synthesize(ctx context.Context, request string, matches []domain.CourseMatch) (string, error) {
	if len(matches) == 0 {
		return NoMatchMessage, nil
	}
	prompt := fmt.Sprintf(synthesisPrompt, request, formatMatches(matches))
	out, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("synthesize recommendation: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Explain annotates each match with a short model-written reason it fits
// the request. Matches are explained concurrently; a failed explanation
// is logged and left empty rather than failing the query.
func (s *Synthesizer) Explain(ctx context.Context, request string, matches []domain.CourseMatch) {
	var wg sync.WaitGroup
	for i := range matches {
		wg.Add(1)
		go func(m *domain.CourseMatch) {
			defer wg.Done()
			prompt := fmt.Sprintf(explainPrompt, request,
				m.Course.Code, m.Course.Description, m.Course.Semester, m.Course.Instructor)
			out, err := s.gen.Generate(ctx, prompt)
			if err != nil {
				s.log.Warn().Err(err).Str("code", m.Course.Code).Msg("explanation failed")
				return
			}
			m.Explanation = strings.TrimSpace(out)
		}(&matches[i])
	}
	wg.Wait()
}

// formatMatches renders the retrieved courses the way the synthesis
// prompt expects: one numbered line per course.
func formatMatches(matches []domain.CourseMatch) string {
	lines := make([]string, 0, len(matches))
	for i, m := range matches {
		parts := []string{fmt.Sprintf("%d. [%s] %s", i+1, m.Course.Code, m.Course.Description)}
		if m.Course.Semester != "" {
			parts = append(parts, "Semester: "+m.Course.Semester)
		}
		if m.Course.Instructor != "" {
			parts = append(parts, "Instructor: "+m.Course.Instructor)
		}
		parts = append(parts, fmt.Sprintf("Relevance: %.2f", m.Score))
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}
