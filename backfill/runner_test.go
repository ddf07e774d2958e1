package backfill

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/ai/mock"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/pipeline"
	"github.com/poiesic/resound/storage"
	"github.com/poiesic/resound/storage/badger"
)

func setupBackfill(t *testing.T) (storage.RecordingRepository, storage.MemoryRepository, *pipeline.Orchestrator, *mock.MockProvider) {
	t.Helper()

	recordings, entities, memories, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	provider := mock.NewMockProvider()
	orchestrator, err := pipeline.NewOrchestrator(recordings, entities, memories, provider)
	require.NoError(t, err)

	return recordings, memories, orchestrator, provider
}

func addCompletedRecording(t *testing.T, recordings storage.RecordingRepository, id, text string) {
	t.Helper()
	ctx := context.Background()

	_, err := recordings.AddRecording(ctx, &core.Recording{
		Id:          id,
		Filename:    id + ".mp3",
		ContentType: "audio/mpeg",
		State:       core.StateCompleted(),
	})
	require.NoError(t, err)
	require.NoError(t, recordings.PutTranscript(ctx, &core.Transcript{
		RecordingId: id,
		Text:        text,
	}))
}

func TestRunRecompilesAllCompleted(t *testing.T) {
	recordings, memories, orchestrator, _ := setupBackfill(t)
	ctx := context.Background()

	addCompletedRecording(t, recordings, "rec-1", "First conversation worth keeping.")
	addCompletedRecording(t, recordings, "rec-2", "Second conversation worth keeping.")

	// A recording still uploading is not eligible
	_, err := recordings.AddRecording(ctx, &core.Recording{
		Id:          "rec-pending",
		Filename:    "pending.mp3",
		ContentType: "audio/mpeg",
		State:       core.StateUploading(),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	runner, err := NewRunner(recordings, orchestrator, pipeline.ActionSummarize, nil, &out)
	require.NoError(t, err)

	require.NoError(t, runner.Run(ctx))

	for _, id := range []string{"rec-1", "rec-2"} {
		_, err := memories.GetMemory(ctx, id)
		assert.NoError(t, err, id)
	}
	_, err = memories.GetMemory(ctx, "rec-pending")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	assert.Contains(t, out.String(), "Backfill complete")
	assert.Contains(t, out.String(), "2 recordings")
}

func TestRunCountsFailuresWithoutStopping(t *testing.T) {
	recordings, memories, orchestrator, provider := setupBackfill(t)
	ctx := context.Background()

	addCompletedRecording(t, recordings, "rec-bad", "Unsummarizable.")
	addCompletedRecording(t, recordings, "rec-good", "Fine conversation.")

	provider.GetMockCompiler().CompileMemoryFunc = func(ctx context.Context, text string) (*ai.CompiledMemory, error) {
		if text == "Unsummarizable." {
			return nil, errors.New("service down")
		}
		return &ai.CompiledMemory{Title: "Fine", Summary: text}, nil
	}

	var out bytes.Buffer
	runner, err := NewRunner(recordings, orchestrator, pipeline.ActionSummarize, nil, &out)
	require.NoError(t, err)
	require.NoError(t, runner.Run(ctx))

	_, err = memories.GetMemory(ctx, "rec-good")
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "1 failed")
}

func TestRunEmptyDatabase(t *testing.T) {
	recordings, _, orchestrator, _ := setupBackfill(t)

	var out bytes.Buffer
	runner, err := NewRunner(recordings, orchestrator, pipeline.ActionSummarize, nil, &out)
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background()))
	assert.Contains(t, out.String(), "No completed recordings")
}

func TestNewRunnerValidation(t *testing.T) {
	recordings, _, orchestrator, _ := setupBackfill(t)
	var out bytes.Buffer

	_, err := NewRunner(nil, orchestrator, pipeline.ActionSummarize, nil, &out)
	assert.ErrorIs(t, err, ErrRecordingRepositoryRequired)
	_, err = NewRunner(recordings, nil, pipeline.ActionSummarize, nil, &out)
	assert.ErrorIs(t, err, ErrOrchestratorRequired)
	_, err = NewRunner(recordings, orchestrator, pipeline.ActionAll, nil, &out)
	assert.ErrorIs(t, err, ErrActionRequired)
}

func TestProgressTracker(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 3, 1)
	tracker.Start()
	tracker.Done(false)
	tracker.Done(true)
	tracker.Done(false)
	tracker.Finish()

	assert.Equal(t, 1, tracker.Failed())
	assert.Contains(t, out.String(), "3/3")
	assert.Contains(t, out.String(), "1 failed")
}
