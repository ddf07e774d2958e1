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

// Package openai provides AI service implementations using OpenAI-compatible APIs.
//
// This package implements the ai.Provider interface using the langchaingo
// library to communicate with OpenAI or OpenAI-compatible services (such as
// Ollama, LocalAI, or vLLM), and delegates transcription to the deepgram
// package.
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithTranscriptionKey(os.Getenv("DEEPGRAM_API_KEY")),
//	    ai.WithChatHost("http://localhost:11434"), // /v1 added automatically
//	    ai.WithChatModel("qwen2.5:3b"),
//	)
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	// Use the services
//	candidates, err := provider.EntityExtractor().ExtractEntities(ctx, transcript)
//	memory, err := provider.MemoryCompiler().CompileMemory(ctx, transcript)
//
// Chat calls run with temperature zero and JSON mode, and the response text
// is scrubbed of code fences and repaired before parsing. A response that
// still fails to parse is reported as an error wrapping ai.ErrMalformedResponse
// so callers can distinguish bad model output from transport failures.
package openai
