package mock

import (
	"context"
	"strings"

	"github.com/poiesic/resound/ai"
)

// MockMemoryCompiler is a test double for ai.MemoryCompiler.
// It allows custom behavior injection via function fields.
type MockMemoryCompiler struct {
	// CompileMemoryFunc is called by CompileMemory if set.
	// If nil, uses default behavior derived from the input text.
	CompileMemoryFunc func(ctx context.Context, text string) (*ai.CompiledMemory, error)

	callCount int
}

// NewMockMemoryCompiler creates a mock memory compiler with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockCompiler().
func NewMockMemoryCompiler() *MockMemoryCompiler {
	return &MockMemoryCompiler{}
}

// CompileMemory produces a deterministic compiled memory.
// Default behavior: the title is the first few words of the text, the
// summary is the whole text, and the first sentence becomes a single moment.
func (m *MockMemoryCompiler) CompileMemory(ctx context.Context, text string) (*ai.CompiledMemory, error) {
	m.callCount++

	if m.CompileMemoryFunc != nil {
		return m.CompileMemoryFunc(ctx, text)
	}

	words := strings.Fields(text)
	titleWords := words
	if len(titleWords) > 5 {
		titleWords = titleWords[:5]
	}

	memory := &ai.CompiledMemory{
		Title:   strings.Join(titleWords, " "),
		Summary: strings.TrimSpace(text),
	}
	if first, _, found := strings.Cut(memory.Summary, "."); found && first != "" {
		memory.Moments = []ai.CompiledMoment{
			{
				Quote:        first + ".",
				Context:      "Opening of the conversation.",
				Significance: "Sets the topic.",
			},
		}
	}

	return memory, nil
}

// CallCount returns the number of times CompileMemory was called.
func (m *MockMemoryCompiler) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockMemoryCompiler) Reset() {
	m.callCount = 0
	m.CompileMemoryFunc = nil
}
