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
	"slices"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/resound/ai"
)

// EntityExtractor implements ai.EntityExtractor using OpenAI-compatible chat APIs.
type EntityExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// entityItem is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type entityItem struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Portrait string   `json:"portrait"`
	Quotes   []string `json:"quotes"`
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	Entities []entityItem `json:"entities"`
}

// newEntityExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEntityExtractor(config *ai.Config) (*EntityExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatClient(config)
	if err != nil {
		return nil, err
	}

	return &EntityExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewEntityExtractor creates a new entity extractor using the provided configuration.
//
// Returns ai.EntityExtractor interface to enforce abstraction.
func NewEntityExtractor(config *ai.Config) (ai.EntityExtractor, error) {
	return newEntityExtractor(config)
}

// ExtractEntities extracts entity candidates from transcript text using an LLM.
// A response that cannot be parsed as the expected structure is reported as
// an error wrapping ai.ErrMalformedResponse; transport and service failures
// are returned unwrapped.
func (e *EntityExtractor) ExtractEntities(ctx context.Context, text string) ([]ai.EntityCandidate, error) {
	text = scrubString(text)
	if text == "" {
		return nil, ai.ErrEmptyTranscript
	}

	responseText, err := completeJSON(ctx, e.client, buildExtractionPrompt(), text)
	if err != nil {
		e.logger.Error("failed to generate content", "err", err)
		return nil, err
	}
	if responseText == "" {
		e.logger.Debug("no choices returned from model")
		return []ai.EntityCandidate{}, nil
	}

	var result extraction
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		e.logger.Warn("error parsing extraction response",
			"response", responseText,
			"err", err)
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}

	candidates := make([]ai.EntityCandidate, 0, len(result.Entities))
	for _, item := range result.Entities {
		// Drop candidates the pipeline could never persist.
		if item.Name == "" || !slices.Contains(ai.EntityTypes, item.Type) {
			e.logger.Debug("dropping entity candidate",
				"name", item.Name,
				"type", item.Type)
			continue
		}
		candidates = append(candidates, ai.EntityCandidate{
			Name:     item.Name,
			Type:     item.Type,
			Portrait: item.Portrait,
			Quotes:   item.Quotes,
		})
	}

	e.logger.Debug("extracted entities",
		"total", len(result.Entities),
		"kept", len(candidates))
	return candidates, nil
}
