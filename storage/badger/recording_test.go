package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

func TestRecordingBasics(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	recording := &core.Recording{
		Id:          "01JD2Q5T9WXYZABCDEFGH12345",
		Filename:    "standup.m4a",
		ContentType: "audio/mp4",
		AudioPath:   "/tmp/standup.m4a",
		State:       core.StateProcessing(core.PhaseTranscribing),
	}

	added, err := recordingRepo.AddRecording(ctx, recording)
	if err != nil {
		t.Fatalf("Failed to add recording: %v", err)
	}
	if added.InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := recordingRepo.GetRecording(ctx, recording.Id)
	if err != nil {
		t.Fatalf("Failed to get recording: %v", err)
	}
	if retrieved.Filename != "standup.m4a" {
		t.Fatalf("Expected 'standup.m4a', got '%s'", retrieved.Filename)
	}
	phase, ok := retrieved.State.Phase()
	if !ok || phase != core.PhaseTranscribing {
		t.Fatalf("Expected transcribing phase, got %v (ok=%v)", phase, ok)
	}

	// Duplicate add is rejected
	_, err = recordingRepo.AddRecording(ctx, &core.Recording{Id: recording.Id, State: core.StateUploading()})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestRecordingUpdate(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	recording := &core.Recording{
		Id:    "r1",
		State: core.StateProcessing(core.PhaseTranscribing),
	}
	if _, err := recordingRepo.AddRecording(ctx, recording); err != nil {
		t.Fatalf("Failed to add recording: %v", err)
	}

	recording.DurationSeconds = 182.5
	recording.SpeakerCount = 2
	recording.State = core.StateCompleted()
	if _, err := recordingRepo.UpdateRecording(ctx, recording); err != nil {
		t.Fatalf("Failed to update recording: %v", err)
	}

	retrieved, err := recordingRepo.GetRecording(ctx, "r1")
	if err != nil {
		t.Fatalf("Failed to get recording: %v", err)
	}
	if retrieved.SpeakerCount != 2 {
		t.Fatalf("Expected 2 speakers, got %d", retrieved.SpeakerCount)
	}
	if retrieved.State.Status() != core.StatusCompleted {
		t.Fatalf("Expected completed, got %v", retrieved.State)
	}
	if _, ok := retrieved.State.Phase(); ok {
		t.Fatal("Completed recording should not carry a phase")
	}

	// Updating an unknown recording fails
	_, err = recordingRepo.UpdateRecording(ctx, &core.Recording{Id: "missing", State: core.StateCompleted()})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestTranscriptReplace(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = recordingRepo.GetTranscript(ctx, "r1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for absent transcript, got %v", err)
	}

	first := &core.Transcript{
		RecordingId: "r1",
		Text:        "first pass",
		Segments: []core.Segment{
			{Speaker: "Speaker 1", Text: "first pass", StartMS: 0, EndMS: 900},
		},
	}
	if err := recordingRepo.PutTranscript(ctx, first); err != nil {
		t.Fatalf("Failed to put transcript: %v", err)
	}

	second := &core.Transcript{
		RecordingId: "r1",
		Text:        "second pass",
		Segments: []core.Segment{
			{Speaker: "Speaker 1", Text: "second", StartMS: 0, EndMS: 500},
			{Speaker: "Speaker 2", Text: "pass", StartMS: 500, EndMS: 900},
		},
	}
	if err := recordingRepo.PutTranscript(ctx, second); err != nil {
		t.Fatalf("Failed to replace transcript: %v", err)
	}

	retrieved, err := recordingRepo.GetTranscript(ctx, "r1")
	if err != nil {
		t.Fatalf("Failed to get transcript: %v", err)
	}
	if retrieved.Text != "second pass" {
		t.Fatalf("Expected replaced text, got '%s'", retrieved.Text)
	}
	if len(retrieved.Segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(retrieved.Segments))
	}
}

func TestListRecordings(t *testing.T) {
	recordingRepo, entityRepo, memoryRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { memoryRepo.Close(); entityRepo.Close(); recordingRepo.Close(); backend.Close() }()

	ctx := context.Background()

	for _, id := range []string{"a1", "a2", "a3"} {
		if _, err := recordingRepo.AddRecording(ctx, &core.Recording{Id: id, State: core.StateCompleted()}); err != nil {
			t.Fatalf("Failed to add recording %s: %v", id, err)
		}
	}

	all, err := recordingRepo.ListRecordings(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list recordings: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 recordings, got %d", len(all))
	}

	limited, err := recordingRepo.ListRecordings(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to list recordings: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("Expected 2 recordings, got %d", len(limited))
	}
}
