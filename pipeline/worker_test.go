package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resound/core"
)

func setupTestWorker(t *testing.T) (*Worker, *testEnv) {
	t.Helper()
	env := setupTestEnv(t)
	worker, err := NewWorker(env.orchestrator)
	require.NoError(t, err)
	t.Cleanup(worker.Release)
	return worker, env
}

func TestParseJob(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    *Job
		wantErr error
	}{
		{
			name:    "full job",
			payload: `{"recordingId": "rec-1"}`,
			want:    &Job{RecordingID: "rec-1"},
		},
		{
			name:    "restricted job",
			payload: `{"recordingId": "rec-1", "action": "transcribe"}`,
			want:    &Job{RecordingID: "rec-1", Action: ActionTranscribe},
		},
		{
			name:    "missing recording",
			payload: `{"action": "transcribe"}`,
			wantErr: ErrEmptyRecordingID,
		},
		{
			name:    "unknown action",
			payload: `{"recordingId": "rec-1", "action": "reticulate"}`,
			wantErr: ErrUnknownAction,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job, err := ParseJob([]byte(tc.payload))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, job)
		})
	}
}

func TestParseJobInvalidJSON(t *testing.T) {
	_, err := ParseJob([]byte("not json"))
	assert.Error(t, err)
}

func TestJobEncodeRoundTrip(t *testing.T) {
	job := &Job{RecordingID: "rec-1", Action: ActionSummarize}
	payload, err := job.Encode()
	require.NoError(t, err)

	decoded, err := ParseJob(payload)
	require.NoError(t, err)
	assert.Equal(t, job, decoded)
}

// A batch keeps going past undecodable payloads and failed jobs, and every
// message is consumed exactly once.
func TestProcessBatchAcksEverything(t *testing.T) {
	worker, env := setupTestWorker(t)
	ctx := context.Background()

	env.addRecording(t, "rec-1", "First conversation.")
	env.addRecording(t, "rec-2", "Second conversation.")

	worker.ProcessBatch(ctx,
		[]byte(`{"recordingId": "rec-1"}`),
		[]byte(`garbage`),
		[]byte(`{"recordingId": "no-such-recording"}`),
		[]byte(`{"recordingId": "rec-2"}`),
	)

	for _, id := range []string{"rec-1", "rec-2"} {
		recording, err := env.recordings.GetRecording(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, core.StatusCompleted, recording.State.Status(), id)
	}
}

func TestEnqueueProcessesAsynchronously(t *testing.T) {
	worker, env := setupTestWorker(t)
	ctx := context.Background()

	env.addRecording(t, "rec-1", "Queued conversation.")
	require.NoError(t, worker.Enqueue(&Job{RecordingID: "rec-1"}))

	deadline := time.Now().Add(5 * time.Second)
	for {
		recording, err := env.recordings.GetRecording(ctx, "rec-1")
		require.NoError(t, err)
		if recording.State.Status() == core.StatusCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("recording never completed, state %s", recording.State)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNewWorkerRequiresOrchestrator(t *testing.T) {
	_, err := NewWorker(nil)
	assert.ErrorIs(t, err, ErrOrchestratorRequired)
}
