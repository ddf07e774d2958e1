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

package backfill

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/pipeline"
	"github.com/poiesic/resound/storage"
)

// Config holds configuration for a backfill operation.
type Config struct {
	// ReportInterval is how often to report progress (number of recordings)
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ReportInterval: 10,
	}
}

// Runner re-runs one pipeline phase across every completed recording.
// Phase output replaces what a previous run stored, so a backfill is safe to
// repeat. Individual failures are counted and skipped; there is no retry.
type Runner struct {
	recordings   storage.RecordingRepository
	orchestrator *pipeline.Orchestrator
	action       pipeline.Action
	config       *Config
	progress     io.Writer
}

// NewRunner creates a backfill runner for a single-phase action.
// progress: where to write progress output (typically os.Stderr)
func NewRunner(
	recordings storage.RecordingRepository,
	orchestrator *pipeline.Orchestrator,
	action pipeline.Action,
	config *Config,
	progress io.Writer,
) (*Runner, error) {
	if recordings == nil {
		return nil, ErrRecordingRepositoryRequired
	}
	if orchestrator == nil {
		return nil, ErrOrchestratorRequired
	}
	if action == pipeline.ActionAll {
		return nil, ErrActionRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &Runner{
		recordings:   recordings,
		orchestrator: orchestrator,
		action:       action,
		config:       config,
		progress:     progress,
	}, nil
}

// Run executes the backfill over every completed recording.
// Progress is reported to the configured writer. The returned error covers
// only the recording scan; per-recording failures are reported in the
// summary and do not stop the run.
func (r *Runner) Run(ctx context.Context) error {
	recordings, err := r.recordings.ListRecordings(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to list recordings: %w", err)
	}

	eligible := make([]*core.Recording, 0, len(recordings))
	for _, recording := range recordings {
		if recording.State.Status() == core.StatusCompleted {
			eligible = append(eligible, recording)
		}
	}

	if len(eligible) == 0 {
		fmt.Fprintf(r.progress, "No completed recordings to backfill (0 recordings)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting %s backfill of %d recordings\n",
		r.action, len(eligible))

	tracker := NewProgressTracker(r.progress, len(eligible), r.config.ReportInterval)
	tracker.Start()

	for _, recording := range eligible {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := r.orchestrator.Process(ctx, &pipeline.Job{
			RecordingID: recording.Id,
			Action:      r.action,
		})
		tracker.Done(err != nil)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Backfill complete. Processed %d recordings in %v, %d failed\n",
		len(eligible), elapsed.Round(time.Second), tracker.Failed())

	return nil
}
