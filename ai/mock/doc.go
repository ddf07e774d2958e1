// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Transcriber,
// ai.EntityExtractor, ai.MemoryCompiler, and ai.Provider for use in unit
// tests. The mocks allow tests to run without external AI service
// dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	result, err := provider.Transcriber().Transcribe(ctx, audio, "audio/mpeg")
//
//	// Custom behavior injection
//	provider.GetMockExtractor().ExtractEntitiesFunc = func(ctx context.Context, text string) ([]ai.EntityCandidate, error) {
//	    return nil, ai.ErrMalformedResponse
//	}
//
//	// Check call counts
//	count := provider.GetMockExtractor().CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockTranscriber: Treats audio bytes as text, one line per paragraph
//   - MockEntityExtractor: Capitalized words become person candidates
//   - MockMemoryCompiler: Derives title, summary, and one moment from the text
//   - MockProvider: Aggregates all three and reports itself configured
package mock
