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


package storage

import (
	"github.com/poiesic/resound/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalRecording serializes a Recording to bytes.
func MarshalRecording(recording *core.Recording) []byte {
	buf := make([]byte, core.RecordingMUS.Size(*recording))
	core.RecordingMUS.Marshal(*recording, buf)
	return buf
}

// UnmarshalRecording deserializes a Recording from bytes.
func UnmarshalRecording(data []byte) (*core.Recording, error) {
	recording, _, err := core.RecordingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &recording, nil
}

// MarshalTranscript serializes a Transcript to bytes.
func MarshalTranscript(transcript *core.Transcript) []byte {
	buf := make([]byte, core.TranscriptMUS.Size(*transcript))
	core.TranscriptMUS.Marshal(*transcript, buf)
	return buf
}

// UnmarshalTranscript deserializes a Transcript from bytes.
func UnmarshalTranscript(data []byte) (*core.Transcript, error) {
	transcript, _, err := core.TranscriptMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &transcript, nil
}

// MarshalEntity serializes an Entity to bytes.
func MarshalEntity(entity *core.Entity) []byte {
	buf := make([]byte, core.EntityMUS.Size(*entity))
	core.EntityMUS.Marshal(*entity, buf)
	return buf
}

// UnmarshalEntity deserializes an Entity from bytes.
func UnmarshalEntity(data []byte) (*core.Entity, error) {
	entity, _, err := core.EntityMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// MarshalMention serializes a Mention to bytes.
func MarshalMention(mention *core.Mention) []byte {
	buf := make([]byte, core.MentionMUS.Size(*mention))
	core.MentionMUS.Marshal(*mention, buf)
	return buf
}

// UnmarshalMention deserializes a Mention from bytes.
func UnmarshalMention(data []byte) (*core.Mention, error) {
	mention, _, err := core.MentionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &mention, nil
}

// MarshalMemory serializes a Memory to bytes.
func MarshalMemory(memory *core.Memory) []byte {
	buf := make([]byte, core.MemoryMUS.Size(*memory))
	core.MemoryMUS.Marshal(*memory, buf)
	return buf
}

// UnmarshalMemory deserializes a Memory from bytes.
func UnmarshalMemory(data []byte) (*core.Memory, error) {
	memory, _, err := core.MemoryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &memory, nil
}

// MarshalMoment serializes a Moment to bytes.
func MarshalMoment(moment *core.Moment) []byte {
	buf := make([]byte, core.MomentMUS.Size(*moment))
	core.MomentMUS.Marshal(*moment, buf)
	return buf
}

// UnmarshalMoment deserializes a Moment from bytes.
func UnmarshalMoment(data []byte) (*core.Moment, error) {
	moment, _, err := core.MomentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &moment, nil
}
