package core

import (
	"errors"
	"testing"
)

func TestValidateRecording(t *testing.T) {
	tests := []struct {
		name      string
		recording *Recording
		wantErr   error
	}{
		{
			name: "valid recording",
			recording: &Recording{
				Id:       "01JD2Q5T9WXYZABCDEFGH12345",
				Filename: "standup.m4a",
				State:    StateProcessing(PhaseTranscribing),
			},
			wantErr: nil,
		},
		{
			name: "valid completed recording",
			recording: &Recording{
				Id:    "01JD2Q5T9WXYZABCDEFGH12345",
				State: StateCompleted(),
			},
			wantErr: nil,
		},
		{
			name:      "nil recording",
			recording: nil,
			wantErr:   ErrInvalidRecording,
		},
		{
			name: "empty id",
			recording: &Recording{
				State: StateUploading(),
			},
			wantErr: ErrEmptyRecordingId,
		},
		{
			name: "zero-value state",
			recording: &Recording{
				Id: "01JD2Q5T9WXYZABCDEFGH12345",
			},
			wantErr: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecording(tt.recording)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRecording() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRecording() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTranscript(t *testing.T) {
	tests := []struct {
		name       string
		transcript *Transcript
		wantErr    error
	}{
		{
			name: "valid transcript",
			transcript: &Transcript{
				RecordingId: "r1",
				Text:        "I met Alice yesterday",
				Segments: []Segment{
					{Speaker: "Speaker 1", Text: "I met Alice yesterday", StartMS: 0, EndMS: 2100},
					{Speaker: "Speaker 2", Text: "Oh nice", StartMS: 2100, EndMS: 2900},
				},
			},
			wantErr: nil,
		},
		{
			name: "empty segments",
			transcript: &Transcript{
				RecordingId: "r1",
			},
			wantErr: nil,
		},
		{
			name:       "nil transcript",
			transcript: nil,
			wantErr:    ErrInvalidTranscript,
		},
		{
			name: "missing recording id",
			transcript: &Transcript{
				Text: "hello",
			},
			wantErr: ErrEmptyRecordingId,
		},
		{
			name: "out of order segments",
			transcript: &Transcript{
				RecordingId: "r1",
				Segments: []Segment{
					{StartMS: 5000, EndMS: 6000},
					{StartMS: 1000, EndMS: 2000},
				},
			},
			wantErr: ErrSegmentOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTranscript(tt.transcript)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTranscript() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTranscript() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEntity(t *testing.T) {
	tests := []struct {
		name    string
		entity  *Entity
		wantErr error
	}{
		{
			name: "valid entity",
			entity: &Entity{
				Name: "Alice",
				Type: "person",
			},
			wantErr: nil,
		},
		{
			name: "valid entity with zero id and tier",
			entity: &Entity{
				Name: "Blue Bottle",
				Type: "place",
			},
			wantErr: nil,
		},
		{
			name:    "nil entity",
			entity:  nil,
			wantErr: ErrInvalidEntity,
		},
		{
			name: "empty name",
			entity: &Entity{
				Type: "person",
			},
			wantErr: ErrEmptyEntityName,
		},
		{
			name: "empty type",
			entity: &Entity{
				Name: "Alice",
			},
			wantErr: ErrEmptyEntityType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntity(tt.entity)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEntity() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMention(t *testing.T) {
	tests := []struct {
		name    string
		mention *Mention
		wantErr error
	}{
		{
			name: "valid mention",
			mention: &Mention{
				EntityId:    42,
				RecordingId: "r1",
				Quote:       "I met Alice yesterday",
			},
			wantErr: nil,
		},
		{
			name:    "nil mention",
			mention: nil,
			wantErr: ErrInvalidMention,
		},
		{
			name: "missing entity id",
			mention: &Mention{
				RecordingId: "r1",
				Quote:       "quote",
			},
			wantErr: ErrInvalidMention,
		},
		{
			name: "missing recording id",
			mention: &Mention{
				EntityId: 42,
				Quote:    "quote",
			},
			wantErr: ErrEmptyRecordingId,
		},
		{
			name: "empty quote",
			mention: &Mention{
				EntityId:    42,
				RecordingId: "r1",
			},
			wantErr: ErrEmptyQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMention(tt.mention)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateMention() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMention() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMemory(t *testing.T) {
	if err := ValidateMemory(&Memory{RecordingId: "r1", Title: "Meeting Alice"}); err != nil {
		t.Errorf("ValidateMemory() error = %v, want nil", err)
	}
	if err := ValidateMemory(nil); !errors.Is(err, ErrInvalidMemory) {
		t.Errorf("ValidateMemory(nil) error = %v, want %v", err, ErrInvalidMemory)
	}
	if err := ValidateMemory(&Memory{Title: "no recording"}); !errors.Is(err, ErrEmptyRecordingId) {
		t.Errorf("ValidateMemory() error = %v, want %v", err, ErrEmptyRecordingId)
	}
}
