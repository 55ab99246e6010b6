// Package service implements the three-stage query pipeline: intent
// extraction, semantic retrieval, and response synthesis.
package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

// Result is what a completed (or partially completed) query returns.
// The raw matches travel alongside the recommendation so callers can
// render structured entries next to the narrative text.
type Result struct {
	Recommendation string
	Intent         string
	Matches        []domain.CourseMatch
	StageReached   domain.Stage
}

// Options tunes pipeline behaviour.
type Options struct {
	// Explain enables per-match explanation generation after retrieval.
	Explain bool
}

// Pipeline runs one query through extract, retrieve, and synthesize.
// It keeps no per-query state; a single Pipeline serves concurrent
// callers.
type Pipeline struct {
	intents   *IntentExtractor
	retriever *Retriever
	synth     *Synthesizer
	opts      Options
	log       zerolog.Logger
}

// NewPipeline assembles the query pipeline from its three stages.
func NewPipeline(intents *IntentExtractor, retriever *Retriever, synth *Synthesizer, opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{intents: intents, retriever: retriever, synth: synth, opts: opts, log: log}
}

// Run executes one query. k values below 1 are clamped to 1 rather than
// rejected. On failure the partial Result is returned together with a
// *domain.StageError naming the stage that failed; nothing is retried
// here — retry policy belongs to the caller.
func (p *Pipeline) Run(ctx context.Context, request string, k int) (*Result, error) {
	if k < 1 {
		k = 1
	}
	res := &Result{StageReached: domain.StageReceived}

	res.Intent = p.intents.Extract(ctx, request)
	res.StageReached = domain.StageIntentExtracted
	p.log.Debug().Str("intent", res.Intent).Msg("intent extracted")

	matches, err := p.retriever.Retrieve(ctx, res.Intent, k)
	if err != nil {
		return res, &domain.StageError{Stage: domain.StageRetrieved, Err: err}
	}
	res.Matches = matches
	res.StageReached = domain.StageRetrieved
	p.log.Debug().Int("matches", len(matches)).Msg("retrieval done")

	if p.opts.Explain && len(matches) > 0 {
		p.synth.Explain(ctx, request, res.Matches)
	}

	recommendation, err := p.synth.Synthesize(ctx, request, res.Matches)
	if err != nil {
		return res, &domain.StageError{Stage: domain.StageSynthesized, Err: err}
	}
	res.Recommendation = recommendation
	res.StageReached = domain.StageSynthesized
	return res, nil
}
