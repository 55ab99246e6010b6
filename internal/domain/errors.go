package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions callers are expected to branch on.
// Everything else is wrapped context around one of these or plain errors.
var (
	// ErrServiceUnavailable means an external service (generation model,
	// embedding model, or vector index) was unreachable or returned no
	// usable result. Fatal to the current query or ingestion run.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrSchemaMismatch means a vector had the wrong dimensionality for
	// the index it was written to or queried against.
	ErrSchemaMismatch = errors.New("vector dimension mismatch")

	// ErrCatalogSchema means the catalog file is missing a required
	// column. Raised before any row is processed.
	ErrCatalogSchema = errors.New("catalog schema invalid")
)

// Stage identifies how far a query made it through the pipeline.
type Stage int

const (
	StageReceived Stage = iota
	StageIntentExtracted
	StageRetrieved
	StageSynthesized
)

func (s Stage) String() string {
	switch s {
	case StageReceived:
		return "received"
	case StageIntentExtracted:
		return "intent_extracted"
	case StageRetrieved:
		return "retrieved"
	case StageSynthesized:
		return "synthesized"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageError reports a pipeline failure together with the stage that was
// being attempted when it happened.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
