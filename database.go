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

package resound

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/oklog/ulid/v2"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/ai/openai"
	"github.com/poiesic/resound/backfill"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/pipeline"
	"github.com/poiesic/resound/search"
	"github.com/poiesic/resound/storage"
	"github.com/poiesic/resound/storage/badger"
)

// Database wires the storage backend, AI provider, pipeline, and search into
// one handle over a recording archive.
type Database struct {
	backend       *badger.Backend
	recordingRepo storage.RecordingRepository
	entityRepo    storage.EntityRepository
	memoryRepo    storage.MemoryRepository
	provider      ai.Provider
	orchestrator  *pipeline.Orchestrator
	worker        *pipeline.Worker
	searcher      *search.Searcher
	logger        *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig sets the AI service configuration.
// Ignored when WithProvider is also given.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a prebuilt AI provider instead of constructing one
// from configuration. Used mainly by tests.
func WithProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// NewDatabase opens the recording archive at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	recordingRepo, err := badger.NewRecordingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	entityRepo, err := badger.NewEntityRepository(backend)
	if err != nil {
		recordingRepo.Close()
		backend.Close()
		return nil, err
	}

	memoryRepo, err := badger.NewMemoryRepository(backend)
	if err != nil {
		entityRepo.Close()
		recordingRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			memoryRepo.Close()
			entityRepo.Close()
			recordingRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	db := &Database{
		backend:       backend,
		recordingRepo: recordingRepo,
		entityRepo:    entityRepo,
		memoryRepo:    memoryRepo,
		provider:      provider,
		logger:        slog.Default(),
	}

	db.orchestrator, err = pipeline.NewOrchestrator(recordingRepo, entityRepo, memoryRepo, provider)
	if err != nil {
		db.Close()
		return nil, err
	}
	db.worker, err = pipeline.NewWorker(db.orchestrator)
	if err != nil {
		db.Close()
		return nil, err
	}
	db.searcher, err = search.NewSearcher(recordingRepo, entityRepo, memoryRepo)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// UploadRecording registers an audio file and returns the recording together
// with the job that processes it through the full phase sequence.
// The recording starts in processing state; the audio stays where it is and
// only its path is recorded.
func (db *Database) UploadRecording(ctx context.Context, audioPath, contentType string) (*core.Recording, *pipeline.Job, error) {
	recording := &core.Recording{
		Id:          ulid.Make().String(),
		Filename:    filepath.Base(audioPath),
		ContentType: contentType,
		AudioPath:   audioPath,
		State:       core.StateProcessing(core.PhaseTranscribing),
	}

	added, err := db.recordingRepo.AddRecording(ctx, recording)
	if err != nil {
		return nil, nil, err
	}

	db.logger.Info("recording uploaded", "recording", added.Id, "file", added.Filename)
	return added, &pipeline.Job{RecordingID: added.Id}, nil
}

// ProcessJob runs a job through the pipeline synchronously.
func (db *Database) ProcessJob(ctx context.Context, job *pipeline.Job) error {
	return db.orchestrator.Process(ctx, job)
}

// EnqueueJob submits a job for asynchronous processing.
func (db *Database) EnqueueJob(job *pipeline.Job) error {
	return db.worker.Enqueue(job)
}

// ProcessBatch decodes and runs raw job payloads sequentially.
func (db *Database) ProcessBatch(ctx context.Context, payloads ...[]byte) {
	db.worker.ProcessBatch(ctx, payloads...)
}

// Search finds matches for the query across transcripts, memories, and
// entities.
func (db *Database) Search(ctx context.Context, query string, maxHits int) ([]*search.Hit, error) {
	return db.searcher.Search(ctx, query, maxHits)
}

// RecordingRepository exposes the recording store.
func (db *Database) RecordingRepository() storage.RecordingRepository {
	return db.recordingRepo
}

// EntityRepository exposes the entity store.
func (db *Database) EntityRepository() storage.EntityRepository {
	return db.entityRepo
}

// MemoryRepository exposes the memory store.
func (db *Database) MemoryRepository() storage.MemoryRepository {
	return db.memoryRepo
}

// NewBackfillRunner creates a runner that re-runs one phase across every
// completed recording, writing progress to the given writer.
func (db *Database) NewBackfillRunner(action pipeline.Action, config *backfill.Config, progress io.Writer) (*backfill.Runner, error) {
	return backfill.NewRunner(db.recordingRepo, db.orchestrator, action, config, progress)
}

// Close drains the worker and releases every resource.
func (db *Database) Close() error {
	if db.worker != nil {
		db.worker.Release()
	}

	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.memoryRepo.Close(); err != nil {
		db.logger.Error("error closing memory repository", "err", err)
		return err
	}
	if err := db.entityRepo.Close(); err != nil {
		db.logger.Error("error closing entity repository", "err", err)
		return err
	}
	if err := db.recordingRepo.Close(); err != nil {
		db.logger.Error("error closing recording repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
