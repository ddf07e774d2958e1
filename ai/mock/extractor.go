package mock

import (
	"context"
	"strings"
	"unicode"

	"github.com/poiesic/resound/ai"
)

// MockEntityExtractor is a test double for ai.EntityExtractor.
// It allows custom behavior injection via function fields.
type MockEntityExtractor struct {
	// ExtractEntitiesFunc is called by ExtractEntities if set.
	// If nil, uses default simple capitalized-word extraction.
	ExtractEntitiesFunc func(ctx context.Context, text string) ([]ai.EntityCandidate, error)

	callCount int
}

// NewMockEntityExtractor creates a mock entity extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockEntityExtractor() *MockEntityExtractor {
	return &MockEntityExtractor{}
}

// ExtractEntities extracts simple mock entity candidates from text.
// Default behavior: capitalized words become person candidates, with the
// word itself as the supporting quote. Duplicate names collapse into one
// candidate with multiple quotes.
func (m *MockEntityExtractor) ExtractEntities(ctx context.Context, text string) ([]ai.EntityCandidate, error) {
	m.callCount++

	if m.ExtractEntitiesFunc != nil {
		return m.ExtractEntitiesFunc(ctx, text)
	}

	words := strings.Fields(text)
	candidates := make([]ai.EntityCandidate, 0)
	index := make(map[string]int)

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" {
			continue
		}
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			continue
		}

		if i, ok := index[word]; ok {
			candidates[i].Quotes = append(candidates[i].Quotes, word)
			continue
		}

		index[word] = len(candidates)
		candidates = append(candidates, ai.EntityCandidate{
			Name:     word,
			Type:     "person",
			Portrait: "Mentioned in the conversation.",
			Quotes:   []string{word},
		})

		if len(candidates) >= 5 {
			break
		}
	}

	return candidates, nil
}

// CallCount returns the number of times ExtractEntities was called.
func (m *MockEntityExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEntityExtractor) Reset() {
	m.callCount = 0
	m.ExtractEntitiesFunc = nil
}
