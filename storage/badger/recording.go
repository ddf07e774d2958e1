package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

// RecordingRepository implements storage.RecordingRepository for BadgerDB.
type RecordingRepository struct {
	backend *Backend
}

var _ storage.RecordingRepository = (*RecordingRepository)(nil)

// NewRecordingRepository creates a new RecordingRepository.
func NewRecordingRepository(backend *Backend) (*RecordingRepository, error) {
	return &RecordingRepository{
		backend: backend,
	}, nil
}

// Close releases resources. RecordingRepository has no resources to release.
func (r *RecordingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RecordingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecording adds a recording to storage.
func (r *RecordingRepository) AddRecording(ctx context.Context, recording *core.Recording) (*core.Recording, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecordingKey(recording.Id)

		existing, err := r.readRecording(tx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			return storage.ErrDuplicateKey
		}

		if recording.InsertedAt.IsZero() {
			recording.InsertedAt = time.Now().UTC()
		}
		recording.UpdatedAt = recording.InsertedAt

		value := storage.MarshalRecording(recording)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Insertion-time index for listing
		dateKey := makeRecordingDateKey(recording.InsertedAt, recording.Id)
		if err := tx.Set(dateKey, []byte(recording.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return recording, err
}

// UpdateRecording updates an existing recording.
func (r *RecordingRepository) UpdateRecording(ctx context.Context, recording *core.Recording) (*core.Recording, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecordingKey(recording.Id)

		old, err := r.readRecording(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		// Insertion time never changes after creation
		recording.InsertedAt = old.InsertedAt
		recording.UpdatedAt = time.Now().UTC()

		value := storage.MarshalRecording(recording)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return recording, err
}

// GetRecording retrieves a single recording by ID.
func (r *RecordingRepository) GetRecording(ctx context.Context, id string) (*core.Recording, error) {
	var result *core.Recording
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecordingKey(id)
		var err error
		result, err = r.readRecording(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListRecordings retrieves up to limit recordings, most recent first.
func (r *RecordingRepository) ListRecordings(ctx context.Context, limit int) ([]*core.Recording, error) {
	var results []*core.Recording
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible key in the date index
		startKey := makeRecordingDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), "")
		prefix := []byte(recordingDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}

			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var recordingID string
			if err := iter.Item().Value(func(val []byte) error {
				recordingID = string(val)
				return nil
			}); err != nil {
				return err
			}

			recording, err := r.readRecording(tx, makeRecordingKey(recordingID))
			if err != nil {
				return err
			}
			if recording != nil {
				results = append(results, recording)
			}
		}
		return nil
	}, false)

	return results, err
}

// PutTranscript stores the transcript for a recording, replacing any previous one.
func (r *RecordingRepository) PutTranscript(ctx context.Context, transcript *core.Transcript) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeTranscriptKey(transcript.RecordingId)

		old, err := r.readTranscript(tx, key)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if old != nil {
			transcript.InsertedAt = old.InsertedAt
		} else if transcript.InsertedAt.IsZero() {
			transcript.InsertedAt = now
		}
		transcript.UpdatedAt = now

		value := storage.MarshalTranscript(transcript)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetTranscript retrieves the transcript for a recording.
func (r *RecordingRepository) GetTranscript(ctx context.Context, recordingID string) (*core.Transcript, error) {
	var result *core.Transcript
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeTranscriptKey(recordingID)
		var err error
		result, err = r.readTranscript(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// Helper methods

// readRecording reads a recording from the transaction.
func (r *RecordingRepository) readRecording(tx *badger.Txn, key []byte) (*core.Recording, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var recording *core.Recording
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		recording, unmarshalErr = storage.UnmarshalRecording(val)
		return unmarshalErr
	})
	return recording, err
}

// readTranscript reads a transcript from the transaction.
func (r *RecordingRepository) readTranscript(tx *badger.Txn, key []byte) (*core.Transcript, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var transcript *core.Transcript
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		transcript, unmarshalErr = storage.UnmarshalTranscript(val)
		return unmarshalErr
	})
	return transcript, err
}
