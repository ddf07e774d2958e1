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


// Package storage provides the storage abstraction layer for resound.
//
// This package defines repository interfaces that decouple storage
// implementation from the pipeline. It allows for different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Repositories
//
//   - RecordingRepository: recordings and their one-to-one transcripts
//   - EntityRepository: canonical entities and append-only mentions
//   - MemoryRepository: compiled memories and their moments
//
// Every repository operation is a single storage transaction. The pipeline
// deliberately does not wrap a whole phase in one transaction: a crash
// mid-phase can leave partially written state, which is surfaced to operators
// through the recording's failure status rather than rolled back.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the storage interfaces to
// enforce abstraction:
//
//	repo, err := badger.NewRecordingRepository(backend)  // storage.RecordingRepository
//
// Internal constructors may return concrete types since they're only used
// within the implementation package.
package storage
