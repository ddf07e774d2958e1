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

package mock

import "github.com/poiesic/resound/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock transcriber, extractor, and compiler instances.
type MockProvider struct {
	transcriber *MockTranscriber
	extractor   *MockEntityExtractor
	compiler    *MockMemoryCompiler

	// ConfiguredErr is returned by Configured. Leave nil to report the
	// provider as fully configured.
	ConfiguredErr error
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns the concrete type so tests can reach the underlying mocks for
// assertions and behavior injection.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		transcriber: NewMockTranscriber(),
		extractor:   NewMockEntityExtractor(),
		compiler:    NewMockMemoryCompiler(),
	}
}

// Transcriber returns the mock transcriber.
func (p *MockProvider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// EntityExtractor returns the mock entity extractor.
func (p *MockProvider) EntityExtractor() ai.EntityExtractor {
	return p.extractor
}

// MemoryCompiler returns the mock memory compiler.
func (p *MockProvider) MemoryCompiler() ai.MemoryCompiler {
	return p.compiler
}

// Configured returns ConfiguredErr, nil by default.
func (p *MockProvider) Configured() error {
	return p.ConfiguredErr
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockTranscriber returns the underlying mock transcriber for test assertions.
func (p *MockProvider) GetMockTranscriber() *MockTranscriber {
	return p.transcriber
}

// GetMockExtractor returns the underlying mock extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockEntityExtractor {
	return p.extractor
}

// GetMockCompiler returns the underlying mock compiler for test assertions.
func (p *MockProvider) GetMockCompiler() *MockMemoryCompiler {
	return p.compiler
}
