package resound

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/ai/mock"
	"github.com/poiesic/resound/core"
)

func newTestDatabase(t *testing.T) (*Database, *mock.MockProvider) {
	t.Helper()
	provider := mock.NewMockProvider()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "resound_db"), WithProvider(provider))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, provider
}

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		db, _ := newTestDatabase(t)

		assert.NotNil(t, db.RecordingRepository())
		assert.NotNil(t, db.EntityRepository())
		assert.NotNil(t, db.MemoryRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_UploadAndProcess(t *testing.T) {
	db, _ := newTestDatabase(t)
	ctx := context.Background()

	audioPath := filepath.Join(t.TempDir(), "chat.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("Nora showed me the workshop.\nIt smelled of cedar."), 0o644))

	recording, job, err := db.UploadRecording(ctx, audioPath, "audio/mpeg")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, recording.Id, job.RecordingID)
	assert.Equal(t, "chat.mp3", recording.Filename)
	assert.Equal(t, core.StatusProcessing, recording.State.Status())

	require.NoError(t, db.ProcessJob(ctx, job))

	stored, err := db.RecordingRepository().GetRecording(ctx, recording.Id)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCompleted, stored.State.Status())

	transcript, err := db.RecordingRepository().GetTranscript(ctx, recording.Id)
	require.NoError(t, err)
	assert.Len(t, transcript.Segments, 2)

	// Compiled memory is searchable through the facade
	hits, err := db.Search(ctx, "workshop", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, hits)
}

func TestDatabase_ProcessBatch(t *testing.T) {
	db, _ := newTestDatabase(t)
	ctx := context.Background()

	audioPath := filepath.Join(t.TempDir(), "note.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("A short note."), 0o644))

	recording, job, err := db.UploadRecording(ctx, audioPath, "audio/mpeg")
	require.NoError(t, err)
	payload, err := job.Encode()
	require.NoError(t, err)

	db.ProcessBatch(ctx, payload, []byte("garbage"))

	stored, err := db.RecordingRepository().GetRecording(ctx, recording.Id)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCompleted, stored.State.Status())
}

func TestDatabase_ConfigurationFailure(t *testing.T) {
	db, provider := newTestDatabase(t)
	ctx := context.Background()

	audioPath := filepath.Join(t.TempDir(), "blocked.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("unreachable"), 0o644))

	provider.ConfiguredErr = ai.ErrNotConfigured

	recording, job, err := db.UploadRecording(ctx, audioPath, "audio/mpeg")
	require.NoError(t, err)
	require.Error(t, db.ProcessJob(ctx, job))

	stored, err := db.RecordingRepository().GetRecording(ctx, recording.Id)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailed, stored.State.Status())
}
