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


package ai

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// TranscriptionHost is the base URL for the transcription service API.
	// Example: "https://api.deepgram.com"
	TranscriptionHost string

	// TranscriptionKey is the API key for the transcription service.
	// Required; there is no anonymous access.
	TranscriptionKey string

	// ChatHost is the base URL for the OpenAI-compatible chat API used for
	// entity extraction and memory compilation.
	// Example: "http://localhost:11434/v1" for a local server
	ChatHost string

	// ChatModel is the model identifier for extraction and compilation.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ChatModel string

	// ChatToken is the API token for the chat service.
	// Use "none" for local OpenAI-compatible services without authentication.
	ChatToken string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTranscriptionHost sets the transcription service host URL.
func WithTranscriptionHost(host string) ConfigOption {
	return func(c *Config) {
		c.TranscriptionHost = host
	}
}

// WithTranscriptionKey sets the transcription service API key.
func WithTranscriptionKey(key string) ConfigOption {
	return func(c *Config) {
		c.TranscriptionKey = key
	}
}

// WithChatHost sets the chat service host URL.
func WithChatHost(host string) ConfigOption {
	return func(c *Config) {
		c.ChatHost = host
	}
}

// WithChatModel sets the chat model identifier.
func WithChatModel(model string) ConfigOption {
	return func(c *Config) {
		c.ChatModel = model
	}
}

// WithChatToken sets the chat service API token.
func WithChatToken(token string) ConfigOption {
	return func(c *Config) {
		c.ChatToken = token
	}
}

// DefaultConfig returns a Config with sensible defaults for the hosted
// transcription service and a local OpenAI-compatible chat service.
// Credentials are deliberately left empty; they must be supplied.
func DefaultConfig() *Config {
	return &Config{
		TranscriptionHost: "https://api.deepgram.com",
		ChatHost:          "http://localhost:11434/v1",
		ChatModel:         "qwen2.5:3b",
		ChatToken:         "none",
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithTranscriptionKey(os.Getenv("DEEPGRAM_API_KEY")),
//	    ai.WithChatModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the chat host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc), and
// strips any trailing slash from the transcription host.
func (c *Config) Normalize() {
	if c.ChatHost != "" && !strings.HasSuffix(c.ChatHost, "/v1") {
		c.ChatHost = strings.TrimSuffix(c.ChatHost, "/")
		c.ChatHost = c.ChatHost + "/v1"
	}
	c.TranscriptionHost = strings.TrimSuffix(c.TranscriptionHost, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.TranscriptionHost == "" {
		return errors.New("ai config: TranscriptionHost is required")
	}
	if c.ChatHost == "" {
		return errors.New("ai config: ChatHost is required")
	}
	if c.ChatModel == "" {
		return errors.New("ai config: ChatModel is required")
	}
	if c.ChatToken == "" {
		return errors.New("ai config: ChatToken is required")
	}
	return c.ValidateCredentials()
}

// ValidateCredentials checks that the credentials required to reach the
// external services are present. Returns an error wrapping ErrNotConfigured
// when they are not, so callers can distinguish configuration faults from
// service faults.
func (c *Config) ValidateCredentials() error {
	if c.TranscriptionKey == "" {
		return fmt.Errorf("%w: transcription API key is missing", ErrNotConfigured)
	}
	if c.ChatToken == "" {
		return fmt.Errorf("%w: chat API token is missing", ErrNotConfigured)
	}
	return nil
}
