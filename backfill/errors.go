package backfill

import "errors"

var (
	// ErrRecordingRepositoryRequired is returned when a recording repository is not provided.
	ErrRecordingRepositoryRequired = errors.New("recording repository required")

	// ErrOrchestratorRequired is returned when an orchestrator is not provided.
	ErrOrchestratorRequired = errors.New("orchestrator required")

	// ErrActionRequired is returned when the backfill action is the full
	// sequence rather than a single phase.
	ErrActionRequired = errors.New("backfill requires a single-phase action")
)
