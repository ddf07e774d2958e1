// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateRecording validates a Recording according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - State must carry a valid status
//
// NOT validated (populated by the pipeline):
//   - DurationSeconds and SpeakerCount (zero until transcription runs)
func ValidateRecording(recording *Recording) error {
	if recording == nil {
		return fmt.Errorf("%w: recording is nil", ErrInvalidRecording)
	}

	if recording.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecording, ErrEmptyRecordingId)
	}

	if err := ValidateState(recording.State); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecording, err)
	}

	return nil
}

// ValidateState validates that a RecordingState was built by one of the
// state constructors rather than left as the zero value.
func ValidateState(state RecordingState) error {
	switch state.Status() {
	case StatusUploading, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return ErrInvalidState
	}
}

// ValidateTranscript validates a Transcript according to domain rules.
//
// Validation rules:
//   - RecordingId must not be empty
//   - Segments must be ordered by start time
func ValidateTranscript(transcript *Transcript) error {
	if transcript == nil {
		return fmt.Errorf("%w: transcript is nil", ErrInvalidTranscript)
	}

	if transcript.RecordingId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTranscript, ErrEmptyRecordingId)
	}

	for i := 1; i < len(transcript.Segments); i++ {
		if transcript.Segments[i].StartMS < transcript.Segments[i-1].StartMS {
			return fmt.Errorf("%w: %w", ErrInvalidTranscript, ErrSegmentOrder)
		}
	}

	return nil
}

// ValidateEntity validates an Entity according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Type must not be empty
//
// NOT validated:
//   - Id (0 is valid before content-based assignment)
//   - Tier (0 is valid before the resolver derives it)
func ValidateEntity(entity *Entity) error {
	if entity == nil {
		return fmt.Errorf("%w: entity is nil", ErrInvalidEntity)
	}

	if entity.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyEntityName)
	}

	if entity.Type == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyEntityType)
	}

	return nil
}

// ValidateMention validates a Mention according to domain rules.
//
// Validation rules:
//   - EntityId must be set
//   - RecordingId must not be empty
//   - Quote must not be empty
func ValidateMention(mention *Mention) error {
	if mention == nil {
		return fmt.Errorf("%w: mention is nil", ErrInvalidMention)
	}

	if mention.EntityId == 0 {
		return fmt.Errorf("%w: entity id is not set", ErrInvalidMention)
	}

	if mention.RecordingId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMention, ErrEmptyRecordingId)
	}

	if mention.Quote == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMention, ErrEmptyQuote)
	}

	return nil
}

// ValidateMemory validates a Memory according to domain rules.
//
// Validation rules:
//   - RecordingId must not be empty
func ValidateMemory(memory *Memory) error {
	if memory == nil {
		return fmt.Errorf("%w: memory is nil", ErrInvalidMemory)
	}

	if memory.RecordingId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMemory, ErrEmptyRecordingId)
	}

	return nil
}
