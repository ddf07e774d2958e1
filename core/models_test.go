package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "Alice",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer canonical name that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_CaseAndWhitespaceDistinct(t *testing.T) {
	// Exact-name matching: case or whitespace differences are distinct identities.
	if IDFromContent("Bob") == IDFromContent("bob ") {
		t.Errorf("IDFromContent() produced same ID for distinct names")
	}
	if IDFromContent("Alice") == IDFromContent("alice") {
		t.Errorf("IDFromContent() produced same ID for case-differing names")
	}
}

func TestTierForMentions(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  ConfidenceTier
	}{
		{name: "single mention is emerging", count: 1, want: TierEmerging},
		{name: "zero mentions is emerging", count: 0, want: TierEmerging},
		{name: "two mentions is developing", count: 2, want: TierDeveloping},
		{name: "four mentions is developing", count: 4, want: TierDeveloping},
		{name: "five mentions is established", count: 5, want: TierEstablished},
		{name: "many mentions is established", count: 100, want: TierEstablished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierForMentions(tt.count); got != tt.want {
				t.Errorf("TierForMentions(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestRecordingState_Variants(t *testing.T) {
	uploading := StateUploading()
	if uploading.Status() != StatusUploading {
		t.Errorf("StateUploading() status = %v", uploading.Status())
	}
	if _, ok := uploading.Phase(); ok {
		t.Errorf("uploading state should not carry a phase")
	}

	processing := StateProcessing(PhaseExtracting)
	if processing.Status() != StatusProcessing {
		t.Errorf("StateProcessing() status = %v", processing.Status())
	}
	phase, ok := processing.Phase()
	if !ok || phase != PhaseExtracting {
		t.Errorf("StateProcessing() phase = %v, ok = %v", phase, ok)
	}
	if _, ok := processing.FailureReason(); ok {
		t.Errorf("processing state should not carry a failure reason")
	}

	completed := StateCompleted()
	if completed.Status() != StatusCompleted {
		t.Errorf("StateCompleted() status = %v", completed.Status())
	}
	if _, ok := completed.Phase(); ok {
		t.Errorf("completed state should not carry a phase")
	}

	failed := StateFailed("transcription service returned 502")
	if failed.Status() != StatusFailed {
		t.Errorf("StateFailed() status = %v", failed.Status())
	}
	reason, ok := failed.FailureReason()
	if !ok || reason != "transcription service returned 502" {
		t.Errorf("StateFailed() reason = %q, ok = %v", reason, ok)
	}
	if _, ok := failed.Phase(); ok {
		t.Errorf("failed state should not carry a phase")
	}
}

func TestRecordingState_PhaseOnlyWhileProcessing(t *testing.T) {
	// Phase is observable iff the status is processing.
	states := []RecordingState{
		StateUploading(),
		StateProcessing(PhaseTranscribing),
		StateCompleted(),
		StateFailed("boom"),
	}

	for _, state := range states {
		_, ok := state.Phase()
		want := state.Status() == StatusProcessing
		if ok != want {
			t.Errorf("state %v: phase present = %v, want %v", state, ok, want)
		}
	}
}

func TestRecordingState_String(t *testing.T) {
	tests := []struct {
		name  string
		state RecordingState
		want  string
	}{
		{name: "uploading", state: StateUploading(), want: "uploading"},
		{name: "processing", state: StateProcessing(PhaseCompiling), want: "processing(compiling)"},
		{name: "completed", state: StateCompleted(), want: "completed"},
		{name: "failed", state: StateFailed("no credentials"), want: "failed: no credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
