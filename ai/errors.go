package ai

import "errors"

var (
	// ErrNotConfigured indicates required service credentials are missing.
	ErrNotConfigured = errors.New("ai services not configured")

	// ErrMalformedResponse indicates a service returned output that cannot
	// be parsed as the expected structure. Callers treat this as a
	// recoverable condition and skip the affected phase.
	ErrMalformedResponse = errors.New("malformed service response")

	// ErrEmptyTranscript indicates there is no transcript text to process.
	ErrEmptyTranscript = errors.New("transcript text is empty")
)
