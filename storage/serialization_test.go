package storage

import (
	"testing"
	"time"

	"github.com/poiesic/resound/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("Alice")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			id, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestMarshalUnmarshalRecording(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name      string
		recording *core.Recording
	}{
		{
			name: "processing recording",
			recording: &core.Recording{
				Id:              "01JD2Q5T9WXYZABCDEFGH12345",
				Filename:        "standup.m4a",
				ContentType:     "audio/mp4",
				AudioPath:       "/var/resound/audio/standup.m4a",
				DurationSeconds: 182.5,
				SpeakerCount:    2,
				State:           core.StateProcessing(core.PhaseExtracting),
				InsertedAt:      now,
				UpdatedAt:       now,
			},
		},
		{
			name: "failed recording keeps its reason",
			recording: &core.Recording{
				Id:         "01JD2Q5T9WXYZABCDEFGH12345",
				State:      core.StateFailed("transcription service returned 502"),
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalRecording(tt.recording)
			require.NotEmpty(t, data)

			got, err := UnmarshalRecording(data)
			require.NoError(t, err)
			assert.Equal(t, tt.recording, got)
		})
	}
}

func TestMarshalUnmarshalTranscript(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	transcript := &core.Transcript{
		RecordingId: "r1",
		Text:        "I met Alice yesterday. Oh nice.",
		Segments: []core.Segment{
			{Speaker: "Speaker 1", Text: "I met Alice yesterday.", StartMS: 0, EndMS: 2140},
			{Speaker: "Speaker 2", Text: "Oh nice.", StartMS: 2140, EndMS: 2980},
		},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	data := MarshalTranscript(transcript)
	require.NotEmpty(t, data)

	got, err := UnmarshalTranscript(data)
	require.NoError(t, err)
	assert.Equal(t, transcript, got)
}

func TestMarshalUnmarshalMention(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	mention := &core.Mention{
		Id:          7,
		EntityId:    core.IDFromContent("Alice"),
		RecordingId: "r1",
		Quote:       "I met Alice yesterday",
		Context:     "introduction",
		InsertedAt:  now,
	}

	data := MarshalMention(mention)
	got, err := UnmarshalMention(data)
	require.NoError(t, err)
	assert.Equal(t, mention, got)
}

func TestUnmarshalRecording_Truncated(t *testing.T) {
	recording := &core.Recording{
		Id:         "r1",
		State:      core.StateCompleted(),
		InsertedAt: time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	data := MarshalRecording(recording)
	_, err := UnmarshalRecording(data[:len(data)/2])
	assert.Error(t, err)
}
