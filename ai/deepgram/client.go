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

package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/poiesic/resound/ai"
)

const defaultTimeout = 10 * time.Minute

// Transcriber implements ai.Transcriber over the Deepgram listen API.
type Transcriber struct {
	host   string
	apiKey string
	client *http.Client
	logger *slog.Logger
}

// listenResponse mirrors the subset of the Deepgram response we consume.
type listenResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
				Paragraphs struct {
					Transcript string `json:"transcript"`
					Paragraphs []struct {
						Speaker   int     `json:"speaker"`
						Start     float64 `json:"start"`
						End       float64 `json:"end"`
						Sentences []struct {
							Text  string  `json:"text"`
							Start float64 `json:"start"`
							End   float64 `json:"end"`
						} `json:"sentences"`
					} `json:"paragraphs"`
				} `json:"paragraphs"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// newTranscriber is an internal constructor that returns the concrete type.
// Used by tests and by the provider wiring.
func newTranscriber(config *ai.Config) (*Transcriber, error) {
	config.Normalize()
	if config.TranscriptionHost == "" {
		return nil, fmt.Errorf("deepgram: transcription host is required")
	}

	return &Transcriber{
		host:   config.TranscriptionHost,
		apiKey: config.TranscriptionKey,
		client: &http.Client{Timeout: defaultTimeout},
		logger: slog.Default().With("component", "deepgram-transcriber"),
	}, nil
}

// NewTranscriber creates a new transcriber using the provided configuration.
//
// Returns ai.Transcriber interface to enforce abstraction.
func NewTranscriber(config *ai.Config) (ai.Transcriber, error) {
	return newTranscriber(config)
}

// Transcribe posts the audio to the listen endpoint requesting diarized,
// paragraph-grouped output, and normalizes the nested response.
// Any non-2xx response is an error.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, contentType string) (*ai.DiarizedResult, error) {
	endpoint, err := t.listenURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+t.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("deepgram: http %d: %s", resp.StatusCode, string(body))
	}

	var parsed listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("deepgram: decoding response: %w", err)
	}

	result, err := normalize(&parsed)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("transcription complete",
		"duration", result.Duration,
		"paragraphs", len(result.Paragraphs))
	return result, nil
}

// listenURL builds the listen endpoint with diarization and paragraph
// grouping enabled.
func (t *Transcriber) listenURL() (string, error) {
	u, err := url.Parse(t.host + "/v1/listen")
	if err != nil {
		return "", fmt.Errorf("deepgram: invalid host: %w", err)
	}
	q := u.Query()
	q.Set("diarize", "true")
	q.Set("paragraphs", "true")
	q.Set("punctuate", "true")
	q.Set("smart_format", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// normalize flattens the first channel's first alternative into the
// provider-neutral result shape.
func normalize(parsed *listenResponse) (*ai.DiarizedResult, error) {
	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return nil, fmt.Errorf("deepgram: response contains no transcription alternatives")
	}
	alt := parsed.Results.Channels[0].Alternatives[0]

	text := alt.Paragraphs.Transcript
	if text == "" {
		text = alt.Transcript
	}

	result := &ai.DiarizedResult{
		Text:       text,
		Duration:   parsed.Metadata.Duration,
		Paragraphs: make([]ai.DiarizedParagraph, 0, len(alt.Paragraphs.Paragraphs)),
	}

	for _, p := range alt.Paragraphs.Paragraphs {
		paragraph := ai.DiarizedParagraph{
			Speaker:   p.Speaker,
			Sentences: make([]ai.DiarizedSentence, 0, len(p.Sentences)),
		}
		for _, s := range p.Sentences {
			paragraph.Sentences = append(paragraph.Sentences, ai.DiarizedSentence{
				Text:  s.Text,
				Start: s.Start,
				End:   s.End,
			})
		}
		result.Paragraphs = append(result.Paragraphs, paragraph)
	}

	return result, nil
}
