package pipeline

import "errors"

var (
	// ErrRecordingRepositoryRequired is returned when a recording repository is not provided.
	ErrRecordingRepositoryRequired = errors.New("recording repository required")

	// ErrEntityRepositoryRequired is returned when an entity repository is not provided.
	ErrEntityRepositoryRequired = errors.New("entity repository required")

	// ErrMemoryRepositoryRequired is returned when a memory repository is not provided.
	ErrMemoryRepositoryRequired = errors.New("memory repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrOrchestratorRequired is returned when an orchestrator is not provided.
	ErrOrchestratorRequired = errors.New("orchestrator required")

	// ErrEmptyRecordingID is returned when a job carries no recording ID.
	ErrEmptyRecordingID = errors.New("job recording ID required")

	// ErrUnknownAction is returned when a job carries an unrecognized action.
	ErrUnknownAction = errors.New("unknown job action")
)
