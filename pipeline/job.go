package pipeline

import (
	"encoding/json"
	"fmt"
)

// Action restricts a job to a single pipeline phase.
// An empty action requests the full phase sequence.
type Action string

const (
	// ActionAll runs every phase in order.
	ActionAll Action = ""
	// ActionTranscribe runs only the transcription phase.
	ActionTranscribe Action = "transcribe"
	// ActionExtract runs only the entity extraction phase.
	// No external surface submits this action today; it is reachable only
	// through action-less jobs that run the full sequence.
	ActionExtract Action = "extract"
	// ActionSummarize runs only the memory compilation phase.
	ActionSummarize Action = "summarize"
)

// valid reports whether the action is one of the recognized values.
func (a Action) valid() bool {
	switch a {
	case ActionAll, ActionTranscribe, ActionExtract, ActionSummarize:
		return true
	default:
		return false
	}
}

// Job is one unit of pipeline work: a recording to process and an optional
// action restricting which phase runs.
type Job struct {
	RecordingID string `json:"recordingId"`
	Action      Action `json:"action,omitempty"`
}

// ParseJob decodes an inbound job message.
// Returns ErrEmptyRecordingID or ErrUnknownAction for structurally valid
// JSON that fails validation.
func ParseJob(data []byte) (*Job, error) {
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decoding job: %w", err)
	}
	if job.RecordingID == "" {
		return nil, ErrEmptyRecordingID
	}
	if !job.Action.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, job.Action)
	}
	return &job, nil
}

// Encode serializes the job as a message payload.
func (j *Job) Encode() ([]byte, error) {
	return json.Marshal(j)
}
