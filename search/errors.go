package search

import "errors"

var (
	// ErrRecordingRepositoryRequired is returned when a recording repository is not provided.
	ErrRecordingRepositoryRequired = errors.New("recording repository required")

	// ErrEntityRepositoryRequired is returned when an entity repository is not provided.
	ErrEntityRepositoryRequired = errors.New("entity repository required")

	// ErrMemoryRepositoryRequired is returned when a memory repository is not provided.
	ErrMemoryRepositoryRequired = errors.New("memory repository required")

	// ErrEmptyQuery is returned when the query contains no searchable words.
	ErrEmptyQuery = errors.New("query contains no searchable words")
)
