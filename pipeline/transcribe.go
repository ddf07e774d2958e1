package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/core"
)

// transcribe reads the recording's audio, transcribes it, and persists the
// flattened transcript. Any failure here is fatal: everything downstream
// depends on the transcript.
func (o *Orchestrator) transcribe(ctx context.Context, recording *core.Recording) PhaseResult {
	audio, err := os.ReadFile(recording.AudioPath)
	if err != nil {
		return phaseFatal(fmt.Errorf("reading audio %s: %w", recording.AudioPath, err))
	}

	result, err := o.provider.Transcriber().Transcribe(ctx, audio, recording.ContentType)
	if err != nil {
		return phaseFatal(fmt.Errorf("transcription failed: %w", err))
	}

	segments, speakerCount := flattenDiarization(result)
	transcript := &core.Transcript{
		RecordingId: recording.Id,
		Text:        result.Text,
		Segments:    segments,
	}
	if err := o.recordings.PutTranscript(ctx, transcript); err != nil {
		return phaseFatal(fmt.Errorf("storing transcript: %w", err))
	}

	recording.DurationSeconds = result.Duration
	recording.SpeakerCount = speakerCount
	if _, err := o.recordings.UpdateRecording(ctx, recording); err != nil {
		return phaseFatal(fmt.Errorf("updating recording metadata: %w", err))
	}

	o.logger.Debug("transcript stored",
		"recording", recording.Id,
		"segments", len(segments),
		"speakers", speakerCount)
	return phaseOK()
}

// flattenDiarization turns nested paragraphs and sentences into flat
// speaker-labeled segments and counts the distinct speakers. Speaker labels
// are one-based; fractional second offsets floor to milliseconds.
func flattenDiarization(result *ai.DiarizedResult) ([]core.Segment, int) {
	segments := make([]core.Segment, 0)
	speakers := make(map[int]struct{})

	for _, paragraph := range result.Paragraphs {
		speakers[paragraph.Speaker] = struct{}{}
		label := fmt.Sprintf("Speaker %d", paragraph.Speaker+1)
		for _, sentence := range paragraph.Sentences {
			segments = append(segments, core.Segment{
				Speaker: label,
				Text:    sentence.Text,
				StartMS: int64(math.Floor(sentence.Start * 1000)),
				EndMS:   int64(math.Floor(sentence.End * 1000)),
			})
		}
	}

	return segments, len(speakers)
}
