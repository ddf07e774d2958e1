package pipeline

import (
	"errors"

	"github.com/poiesic/resound/ai"
)

// Severity classifies a phase outcome for the orchestrator.
type Severity int

const (
	// SeverityOK means the phase completed and its output was persisted.
	SeverityOK Severity = iota
	// SeverityRecoverable means the phase produced nothing usable but the
	// pipeline may continue; previously persisted data is untouched.
	SeverityRecoverable
	// SeverityFatal means the pipeline must stop and the recording be
	// marked failed.
	SeverityFatal
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityRecoverable:
		return "recoverable"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// PhaseResult is the typed outcome of one pipeline phase.
type PhaseResult struct {
	Severity Severity
	Err      error
}

func phaseOK() PhaseResult {
	return PhaseResult{Severity: SeverityOK}
}

func phaseRecoverable(err error) PhaseResult {
	return PhaseResult{Severity: SeverityRecoverable, Err: err}
}

func phaseFatal(err error) PhaseResult {
	return PhaseResult{Severity: SeverityFatal, Err: err}
}

// classifyAIError maps an AI service error to a phase result.
// Malformed model output is recoverable; transport and service failures
// are fatal.
func classifyAIError(err error) PhaseResult {
	if errors.Is(err, ai.ErrMalformedResponse) {
		return phaseRecoverable(err)
	}
	return phaseFatal(err)
}
