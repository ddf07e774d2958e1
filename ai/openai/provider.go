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

package openai

import (
	"log/slog"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/ai/deepgram"
)

// Provider implements ai.Provider over OpenAI-compatible chat services and
// the Deepgram transcription API. It manages transcriber, extractor, and
// compiler instances sharing one configuration.
type Provider struct {
	config      *ai.Config
	transcriber ai.Transcriber
	extractor   *EntityExtractor
	compiler    *MemoryCompiler
	logger      *slog.Logger
}

// NewProvider creates a new AI provider from the given configuration.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to provider-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	config.Normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	transcriber, err := deepgram.NewTranscriber(config)
	if err != nil {
		return nil, err
	}

	extractor, err := newEntityExtractor(config)
	if err != nil {
		return nil, err
	}

	compiler, err := newMemoryCompiler(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:      config,
		transcriber: transcriber,
		extractor:   extractor,
		compiler:    compiler,
		logger:      slog.Default().With("component", "openai-provider"),
	}, nil
}

// Transcriber returns the transcription service.
func (p *Provider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// EntityExtractor returns the entity extraction service.
func (p *Provider) EntityExtractor() ai.EntityExtractor {
	return p.extractor
}

// MemoryCompiler returns the memory compilation service.
func (p *Provider) MemoryCompiler() ai.MemoryCompiler {
	return p.compiler
}

// Configured reports whether the credentials required by the transcription
// and chat services are present.
func (p *Provider) Configured() error {
	return p.config.ValidateCredentials()
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing AI provider")
	return nil
}
