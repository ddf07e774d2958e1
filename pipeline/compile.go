package pipeline

import (
	"context"
	"fmt"

	"github.com/poiesic/resound/core"
)

// compile turns the stored transcript into a compiled memory and replaces
// any previous memory for the recording wholesale. Malformed model output is
// recoverable and leaves the prior memory in place.
func (o *Orchestrator) compile(ctx context.Context, recording *core.Recording) PhaseResult {
	transcript, err := o.recordings.GetTranscript(ctx, recording.Id)
	if err != nil {
		return phaseFatal(fmt.Errorf("loading transcript: %w", err))
	}

	compiled, err := o.provider.MemoryCompiler().CompileMemory(ctx, transcript.Text)
	if err != nil {
		return classifyAIError(fmt.Errorf("memory compilation failed: %w", err))
	}

	memory := &core.Memory{
		RecordingId: recording.Id,
		Title:       compiled.Title,
		Summary:     compiled.Summary,
	}
	moments := make([]*core.Moment, 0, len(compiled.Moments))
	for i, m := range compiled.Moments {
		moments = append(moments, &core.Moment{
			RecordingId:  recording.Id,
			Seq:          i,
			Quote:        m.Quote,
			Context:      m.Context,
			Significance: m.Significance,
		})
	}

	if err := o.memories.ReplaceMemory(ctx, memory, moments); err != nil {
		return phaseFatal(fmt.Errorf("storing memory: %w", err))
	}

	o.logger.Debug("memory compiled",
		"recording", recording.Id,
		"moments", len(moments))
	return phaseOK()
}
