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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecording indicates a Recording failed validation.
	ErrInvalidRecording = errors.New("invalid recording")

	// ErrInvalidTranscript indicates a Transcript failed validation.
	ErrInvalidTranscript = errors.New("invalid transcript")

	// ErrInvalidEntity indicates an Entity failed validation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidMention indicates a Mention failed validation.
	ErrInvalidMention = errors.New("invalid mention")

	// ErrInvalidMemory indicates a Memory failed validation.
	ErrInvalidMemory = errors.New("invalid memory")

	// ErrInvalidState indicates a RecordingState carries an invalid status value.
	ErrInvalidState = errors.New("invalid recording state")

	// ErrEmptyRecordingId indicates a required recording identifier is empty.
	ErrEmptyRecordingId = errors.New("recording id cannot be empty")

	// ErrEmptyEntityName indicates the entity Name field is empty.
	ErrEmptyEntityName = errors.New("entity name cannot be empty")

	// ErrEmptyEntityType indicates the entity Type field is empty.
	ErrEmptyEntityType = errors.New("entity type cannot be empty")

	// ErrEmptyQuote indicates the mention Quote field is empty.
	ErrEmptyQuote = errors.New("mention quote cannot be empty")

	// ErrSegmentOrder indicates transcript segments are not ordered by start time.
	ErrSegmentOrder = errors.New("segments must be ordered by start time")
)
