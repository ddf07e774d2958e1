package mock

import (
	"context"
	"strings"

	"github.com/poiesic/resound/ai"
)

// MockTranscriber is a test double for ai.Transcriber.
// It allows custom behavior injection via function fields.
type MockTranscriber struct {
	// TranscribeFunc is called by Transcribe if set.
	// If nil, uses default behavior that treats the audio bytes as text.
	TranscribeFunc func(ctx context.Context, audio []byte, contentType string) (*ai.DiarizedResult, error)

	callCount int
}

// NewMockTranscriber creates a mock transcriber with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockTranscriber().
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcribe produces a deterministic diarized result.
// Default behavior: interprets the audio bytes as text, one sentence per
// line, alternating between two speakers per line.
func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, contentType string) (*ai.DiarizedResult, error) {
	m.callCount++

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audio, contentType)
	}

	text := strings.TrimSpace(string(audio))
	lines := strings.Split(text, "\n")

	result := &ai.DiarizedResult{
		Text:     text,
		Duration: float64(len(lines)),
	}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result.Paragraphs = append(result.Paragraphs, ai.DiarizedParagraph{
			Speaker: i % 2,
			Sentences: []ai.DiarizedSentence{
				{Text: line, Start: float64(i), End: float64(i + 1)},
			},
		})
	}

	return result, nil
}

// CallCount returns the number of times Transcribe was called.
func (m *MockTranscriber) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockTranscriber) Reset() {
	m.callCount = 0
	m.TranscribeFunc = nil
}
