package pipeline

import (
	"context"
	"log/slog"

	"github.com/panjf2000/ants/v2"
)

// Worker drains job messages through the orchestrator one at a time.
// Every job is acknowledged regardless of outcome: failures are logged and
// the message dropped, never retried. There is no per-recording mutual
// exclusion; two jobs for the same recording interleave their writes.
type Worker struct {
	pool         *ants.Pool
	orchestrator *Orchestrator
	logger       *slog.Logger
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithWorkerLogger sets a custom logger.
// Default is slog.Default().
func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
	}
}

// NewWorker creates a worker over the given orchestrator.
// The pool is fixed at a single goroutine so jobs run sequentially.
func NewWorker(orchestrator *Orchestrator, opts ...WorkerOption) (*Worker, error) {
	if orchestrator == nil {
		return nil, ErrOrchestratorRequired
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	w := &Worker{
		pool:         pool,
		orchestrator: orchestrator,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Enqueue submits a job for asynchronous processing.
// The error reports only submission failure; processing outcomes are logged.
func (w *Worker) Enqueue(job *Job) error {
	return w.pool.Submit(func() {
		w.handle(context.Background(), job)
	})
}

// ProcessBatch decodes and runs raw job payloads sequentially.
// Undecodable payloads and failed jobs are logged and dropped.
func (w *Worker) ProcessBatch(ctx context.Context, payloads ...[]byte) {
	for _, payload := range payloads {
		job, err := ParseJob(payload)
		if err != nil {
			w.logger.Error("dropping undecodable job", "err", err)
			continue
		}
		w.handle(ctx, job)
	}
}

// handle runs one job and acknowledges it by logging the outcome.
func (w *Worker) handle(ctx context.Context, job *Job) {
	if err := w.orchestrator.Process(ctx, job); err != nil {
		w.logger.Error("job failed",
			"recording", job.RecordingID,
			"action", string(job.Action),
			"err", err)
		return
	}
	w.logger.Info("job complete",
		"recording", job.RecordingID,
		"action", string(job.Action))
}

// Release releases the worker pool.
// The worker should not be used after calling Release.
func (w *Worker) Release() {
	w.pool.Release()
}
