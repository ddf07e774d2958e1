package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

// MemoryRepository implements storage.MemoryRepository for BadgerDB.
type MemoryRepository struct {
	backend *Backend
}

var _ storage.MemoryRepository = (*MemoryRepository)(nil)

// NewMemoryRepository creates a new MemoryRepository.
func NewMemoryRepository(backend *Backend) (*MemoryRepository, error) {
	return &MemoryRepository{
		backend: backend,
	}, nil
}

// Close releases resources. MemoryRepository has no resources to release.
func (r *MemoryRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *MemoryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// ReplaceMemory deletes any existing memory and moments for the recording,
// then inserts the fresh memory and moments. Recompilation never accumulates
// moments across runs.
func (r *MemoryRepository) ReplaceMemory(ctx context.Context, memory *core.Memory, moments []*core.Moment) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := r.deleteMemoryTx(tx, memory.RecordingId); err != nil {
			return err
		}

		now := time.Now().UTC()
		memory.InsertedAt = now
		memory.UpdatedAt = now

		key := makeMemoryKey(memory.RecordingId)
		if err := tx.Set(key, storage.MarshalMemory(memory)); err != nil {
			return err
		}

		for i, moment := range moments {
			moment.RecordingId = memory.RecordingId
			moment.Seq = i
			momentKey := makeMomentKey(moment.RecordingId, moment.Seq)
			if err := tx.Set(momentKey, storage.MarshalMoment(moment)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetMemory retrieves the memory for a recording.
func (r *MemoryRepository) GetMemory(ctx context.Context, recordingID string) (*core.Memory, error) {
	var result *core.Memory
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeMemoryKey(recordingID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalMemory(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// GetMoments retrieves the moments of a recording's memory in sequence order.
func (r *MemoryRepository) GetMoments(ctx context.Context, recordingID string) ([]*core.Moment, error) {
	var results []*core.Moment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialMomentKey(recordingID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var moment *core.Moment
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				moment, unmarshalErr = storage.UnmarshalMoment(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			results = append(results, moment)
		}
		return nil
	}, false)
	return results, err
}

// DeleteMemory removes the memory and moments for a recording.
func (r *MemoryRepository) DeleteMemory(ctx context.Context, recordingID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := r.deleteMemoryTx(tx, recordingID); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// deleteMemoryTx removes the memory record and all moment rows within tx.
// Absence is not an error.
func (r *MemoryRepository) deleteMemoryTx(tx *badger.Txn, recordingID string) error {
	if err := tx.Delete(makeMemoryKey(recordingID)); err != nil {
		return err
	}

	// Collect moment keys first; deleting while iterating is unsafe
	var momentKeys [][]byte
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = makePartialMomentKey(recordingID)
	iter := tx.NewIterator(opts)
	for iter.Rewind(); iter.Valid(); iter.Next() {
		momentKeys = append(momentKeys, slices.Clone(iter.Item().Key()))
	}
	iter.Close()

	for _, key := range momentKeys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
