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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/resound/ai"
)

// MemoryCompiler implements ai.MemoryCompiler using OpenAI-compatible chat APIs.
type MemoryCompiler struct {
	client llms.Model
	logger *slog.Logger
}

// momentItem is an internal type used for JSON unmarshaling.
type momentItem struct {
	Quote        string `json:"quote"`
	Context      string `json:"context"`
	Significance string `json:"significance"`
}

// compilation is the wrapper structure for the LLM's JSON response.
type compilation struct {
	Title   string       `json:"title"`
	Summary string       `json:"summary"`
	Moments []momentItem `json:"moments"`
}

// newMemoryCompiler is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newMemoryCompiler(config *ai.Config) (*MemoryCompiler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatClient(config)
	if err != nil {
		return nil, err
	}

	return &MemoryCompiler{
		client: client,
		logger: slog.Default().With("component", "openai-compiler"),
	}, nil
}

// NewMemoryCompiler creates a new memory compiler using the provided configuration.
//
// Returns ai.MemoryCompiler interface to enforce abstraction.
func NewMemoryCompiler(config *ai.Config) (ai.MemoryCompiler, error) {
	return newMemoryCompiler(config)
}

// CompileMemory compiles transcript text into a structured memory using an LLM.
// A response that cannot be parsed as the expected structure is reported as
// an error wrapping ai.ErrMalformedResponse; transport and service failures
// are returned unwrapped.
func (c *MemoryCompiler) CompileMemory(ctx context.Context, text string) (*ai.CompiledMemory, error) {
	text = scrubString(text)
	if text == "" {
		return nil, ai.ErrEmptyTranscript
	}

	responseText, err := completeJSON(ctx, c.client, buildCompilationPrompt(), text)
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return nil, err
	}
	if responseText == "" {
		return nil, fmt.Errorf("%w: model returned no choices", ai.ErrMalformedResponse)
	}

	var result compilation
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		c.logger.Warn("error parsing compilation response",
			"response", responseText,
			"err", err)
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}
	if result.Title == "" && result.Summary == "" {
		return nil, fmt.Errorf("%w: response missing title and summary", ai.ErrMalformedResponse)
	}

	memory := &ai.CompiledMemory{
		Title:   result.Title,
		Summary: result.Summary,
		Moments: make([]ai.CompiledMoment, 0, len(result.Moments)),
	}
	for _, m := range result.Moments {
		memory.Moments = append(memory.Moments, ai.CompiledMoment{
			Quote:        m.Quote,
			Context:      m.Context,
			Significance: m.Significance,
		})
	}

	c.logger.Debug("compiled memory",
		"title", memory.Title,
		"moments", len(memory.Moments))
	return memory, nil
}
