package ai

import "context"

// Transcriber converts audio into a diarized, paragraph-grouped transcript.
// Implementations must be thread-safe for concurrent use.
type Transcriber interface {
	// Transcribe sends audio bytes with their declared content type to the
	// transcription service and returns the diarized result.
	// A non-success response from the service is returned as an error.
	Transcribe(ctx context.Context, audio []byte, contentType string) (*DiarizedResult, error)
}

// EntityExtractor extracts entity candidates from transcript text.
// Implementations must be thread-safe for concurrent use.
type EntityExtractor interface {
	// ExtractEntities analyzes transcript text and returns entity candidates
	// with their type, portrait, and supporting quotes.
	// Returns an empty slice if no entities are found.
	// Returns an error wrapping ErrMalformedResponse if the service output
	// cannot be parsed as the expected structure.
	ExtractEntities(ctx context.Context, text string) ([]EntityCandidate, error)
}

// MemoryCompiler compiles transcript text into a structured memory.
// Implementations must be thread-safe for concurrent use.
type MemoryCompiler interface {
	// CompileMemory sends transcript text to the compilation service and
	// returns the structured memory object.
	// Returns an error wrapping ErrMalformedResponse if the service output
	// cannot be parsed as the expected structure.
	CompileMemory(ctx context.Context, text string) (*CompiledMemory, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Transcriber, EntityExtractor,
// and MemoryCompiler instances, ensuring they share configuration and
// resources appropriately.
type Provider interface {
	// Transcriber returns the transcription service.
	// The returned Transcriber is safe for concurrent use.
	Transcriber() Transcriber

	// EntityExtractor returns the entity extraction service.
	// The returned EntityExtractor is safe for concurrent use.
	EntityExtractor() EntityExtractor

	// MemoryCompiler returns the memory compilation service.
	// The returned MemoryCompiler is safe for concurrent use.
	MemoryCompiler() MemoryCompiler

	// Configured reports whether the required service credentials are
	// present. Returns an error wrapping ErrNotConfigured when they are not.
	Configured() error

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
