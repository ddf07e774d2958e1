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


// Package ai provides abstractions for the external services used in Resound.
//
// This package defines interfaces for the three services the pipeline calls:
// diarized transcription, entity extraction, and memory compilation. It
// follows the dependency inversion principle, allowing the pipeline to depend
// on abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Transcriber: audio bytes to a diarized, paragraph-grouped transcript
//   - EntityExtractor: transcript text to entity candidates
//   - MemoryCompiler: transcript text to a structured memory
//   - Provider: aggregates the services for convenient initialization
//
// # Implementation Packages
//
//   - ai/deepgram: transcription over the Deepgram HTTP API
//   - ai/openai: extraction and compilation over OpenAI-compatible chat APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Error Contract
//
// Service implementations distinguish two failure classes. Transport and
// protocol failures are returned as ordinary errors; output that arrives but
// cannot be parsed as the expected structure wraps ErrMalformedResponse. The
// pipeline treats the former as fatal for transcription and the latter as
// recoverable for extraction and compilation.
package ai
