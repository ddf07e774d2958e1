package storage

import (
	"context"

	"github.com/poiesic/resound/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// RecordingRepository provides operations for managing recordings and their
// transcripts. Transcripts are one-to-one with recordings and are replaced
// wholesale on re-transcription.
type RecordingRepository interface {
	Repository
	// AddRecording adds a recording to storage.
	// Sets InsertedAt/UpdatedAt timestamps if not already set.
	// Returns ErrDuplicateKey if a recording with the same ID exists.
	AddRecording(ctx context.Context, recording *core.Recording) (*core.Recording, error)

	// UpdateRecording updates an existing recording.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the recording doesn't exist.
	UpdateRecording(ctx context.Context, recording *core.Recording) (*core.Recording, error)

	// GetRecording retrieves a single recording by ID.
	// Returns ErrNotFound if the recording doesn't exist.
	GetRecording(ctx context.Context, id string) (*core.Recording, error)

	// ListRecordings retrieves up to limit recordings ordered by insertion
	// time descending. A limit <= 0 returns all recordings.
	ListRecordings(ctx context.Context, limit int) ([]*core.Recording, error)

	// PutTranscript stores the transcript for a recording, replacing any
	// previous transcript and its segments wholesale.
	PutTranscript(ctx context.Context, transcript *core.Transcript) error

	// GetTranscript retrieves the transcript for a recording.
	// Returns ErrNotFound if no transcript has been stored.
	GetTranscript(ctx context.Context, recordingID string) (*core.Transcript, error)
}

// EntityRepository provides operations for managing canonical entities and
// their mentions. Entities are globally deduplicated by exact name and are
// never deleted; mentions are append-only.
type EntityRepository interface {
	Repository
	// AddEntity adds an entity to storage.
	// Uses a content-based ID derived from the exact name when Id is 0.
	// Sets timestamps if not already set.
	AddEntity(ctx context.Context, entity *core.Entity) (*core.Entity, error)

	// UpdateEntity updates an existing entity.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the entity doesn't exist.
	UpdateEntity(ctx context.Context, entity *core.Entity) (*core.Entity, error)

	// GetEntity retrieves a single entity by ID.
	// Returns ErrNotFound if the entity doesn't exist.
	GetEntity(ctx context.Context, id core.ID) (*core.Entity, error)

	// FindEntityByName finds an entity by exact, case-sensitive name match.
	// Returns ErrNotFound if no matching entity exists.
	FindEntityByName(ctx context.Context, name string) (*core.Entity, error)

	// ListEntities retrieves all entities.
	ListEntities(ctx context.Context) ([]*core.Entity, error)

	// AddMentions appends one or more mentions.
	// For mentions with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the mentions with generated IDs populated.
	AddMentions(ctx context.Context, mentions ...*core.Mention) ([]*core.Mention, error)

	// CountMentions returns the total number of mentions recorded for an
	// entity across all recordings.
	CountMentions(ctx context.Context, entityID core.ID) (int, error)

	// GetMentionsByEntity retrieves all mentions of an entity, ordered by
	// insertion.
	GetMentionsByEntity(ctx context.Context, entityID core.ID) ([]*core.Mention, error)

	// GetMentionsByRecording retrieves all mentions cited from a recording.
	GetMentionsByRecording(ctx context.Context, recordingID string) ([]*core.Mention, error)
}

// MemoryRepository provides operations for managing compiled memories and
// their moments. A memory is one-to-one with a recording and is replaced
// wholesale (delete-then-insert) on recompilation.
type MemoryRepository interface {
	Repository
	// ReplaceMemory deletes any existing memory and moments for the
	// recording, then inserts the given memory and moments.
	ReplaceMemory(ctx context.Context, memory *core.Memory, moments []*core.Moment) error

	// GetMemory retrieves the memory for a recording.
	// Returns ErrNotFound if no memory has been compiled.
	GetMemory(ctx context.Context, recordingID string) (*core.Memory, error)

	// GetMoments retrieves the moments of a recording's memory in sequence
	// order. Returns an empty slice if no memory exists.
	GetMoments(ctx context.Context, recordingID string) ([]*core.Moment, error)

	// DeleteMemory removes the memory and moments for a recording.
	// Deleting an absent memory is not an error.
	DeleteMemory(ctx context.Context, recordingID string) error
}
