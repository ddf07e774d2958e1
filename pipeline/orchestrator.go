package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

// Orchestrator runs the pipeline phases for one recording at a time.
// It is the only component that mutates recording state.
type Orchestrator struct {
	recordings storage.RecordingRepository
	entities   storage.EntityRepository
	memories   storage.MemoryRepository
	provider   ai.Provider
	matcher    Matcher
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithMatcher sets the entity resolution strategy.
// Default is ExactMatcher.
func WithMatcher(matcher Matcher) Option {
	return func(o *Orchestrator) error {
		if matcher == nil {
			matcher = ExactMatcher{}
		}
		o.matcher = matcher
		return nil
	}
}

// NewOrchestrator creates a pipeline orchestrator over the given
// repositories and AI provider.
func NewOrchestrator(
	recordings storage.RecordingRepository,
	entities storage.EntityRepository,
	memories storage.MemoryRepository,
	provider ai.Provider,
	opts ...Option,
) (*Orchestrator, error) {
	if recordings == nil {
		return nil, ErrRecordingRepositoryRequired
	}
	if entities == nil {
		return nil, ErrEntityRepositoryRequired
	}
	if memories == nil {
		return nil, ErrMemoryRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	o := &Orchestrator{
		recordings: recordings,
		entities:   entities,
		memories:   memories,
		provider:   provider,
		matcher:    ExactMatcher{},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// phaseStep pairs a phase marker with its implementation.
type phaseStep struct {
	phase core.Phase
	run   func(ctx context.Context, recording *core.Recording) PhaseResult
}

// phasesFor maps a job action to the phases to run.
// An absent action runs the full sequence; an explicit action runs only the
// matching phase, never its dependents.
func (o *Orchestrator) phasesFor(action Action) []phaseStep {
	transcribe := phaseStep{core.PhaseTranscribing, o.transcribe}
	extract := phaseStep{core.PhaseExtracting, o.extract}
	compile := phaseStep{core.PhaseCompiling, o.compile}

	switch action {
	case ActionTranscribe:
		return []phaseStep{transcribe}
	case ActionExtract:
		return []phaseStep{extract}
	case ActionSummarize:
		return []phaseStep{compile}
	default:
		return []phaseStep{transcribe, extract, compile}
	}
}

// Process runs the phases selected by the job's action against its recording.
// The recording ends in completed state unless a phase fails fatally, in
// which case it ends failed with the error text. Recoverable phase failures
// are logged and skipped; data persisted by earlier runs stays intact.
func (o *Orchestrator) Process(ctx context.Context, job *Job) error {
	recording, err := o.recordings.GetRecording(ctx, job.RecordingID)
	if err != nil {
		return fmt.Errorf("loading recording %s: %w", job.RecordingID, err)
	}

	logger := o.logger.With("recording", recording.Id, "action", string(job.Action))

	if err := o.provider.Configured(); err != nil {
		logger.Error("AI provider not configured", "err", err)
		o.markFailed(ctx, recording, "configuration error: "+err.Error())
		return err
	}

	for _, step := range o.phasesFor(job.Action) {
		recording.State = core.StateProcessing(step.phase)
		if _, err := o.recordings.UpdateRecording(ctx, recording); err != nil {
			return fmt.Errorf("marking recording %s %s: %w", recording.Id, recording.State, err)
		}

		result := step.run(ctx, recording)
		switch result.Severity {
		case SeverityFatal:
			logger.Error("phase failed", "phase", step.phase, "err", result.Err)
			o.markFailed(ctx, recording, result.Err.Error())
			return result.Err
		case SeverityRecoverable:
			logger.Warn("phase produced no usable output, continuing",
				"phase", step.phase, "err", result.Err)
		default:
			logger.Info("phase complete", "phase", step.phase)
		}
	}

	recording.State = core.StateCompleted()
	if _, err := o.recordings.UpdateRecording(ctx, recording); err != nil {
		return fmt.Errorf("marking recording %s completed: %w", recording.Id, err)
	}
	return nil
}

// markFailed records the terminal failure state. A storage error here is
// logged but not propagated; the original failure is what matters.
func (o *Orchestrator) markFailed(ctx context.Context, recording *core.Recording, reason string) {
	recording.State = core.StateFailed(reason)
	if _, err := o.recordings.UpdateRecording(ctx, recording); err != nil {
		o.logger.Error("failed to persist failure state",
			"recording", recording.Id, "err", err)
	}
}
