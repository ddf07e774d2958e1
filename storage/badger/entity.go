package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/resound/core"
	"github.com/poiesic/resound/storage"
)

// EntityRepository implements storage.EntityRepository for BadgerDB.
type EntityRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.EntityRepository = (*EntityRepository)(nil)

// NewEntityRepository creates a new EntityRepository.
func NewEntityRepository(backend *Backend) (*EntityRepository, error) {
	idSeq, err := backend.GetSequence(mentionIDSeq)
	if err != nil {
		return nil, err
	}

	return &EntityRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the mention ID sequence.
func (r *EntityRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *EntityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntity adds an entity to storage.
func (r *EntityRepository) AddEntity(ctx context.Context, entity *core.Entity) (*core.Entity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use content-based ID from the exact name if not set
		if entity.Id == 0 {
			entity.Id = core.IDFromContent(entity.Name)
		}

		entity.InsertedAt = time.Now().UTC()
		entity.UpdatedAt = entity.InsertedAt

		// Store primary record
		key := makeEntityKey(entity.Id)
		value := storage.MarshalEntity(entity)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Store exact-name index
		nameKey := makeEntityNameKey(entity.Name)
		if err := tx.Set(nameKey, storage.MarshalID(entity.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return entity, err
}

// UpdateEntity updates an existing entity.
func (r *EntityRepository) UpdateEntity(ctx context.Context, entity *core.Entity) (*core.Entity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEntityKey(entity.Id)

		old, err := r.readEntity(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		entity.InsertedAt = old.InsertedAt
		entity.UpdatedAt = time.Now().UTC()

		value := storage.MarshalEntity(entity)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update name index if the name changed
		if old.Name != entity.Name {
			if err := tx.Delete(makeEntityNameKey(old.Name)); err != nil {
				return err
			}
			if err := tx.Set(makeEntityNameKey(entity.Name), storage.MarshalID(entity.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entity, err
}

// GetEntity retrieves a single entity by ID.
func (r *EntityRepository) GetEntity(ctx context.Context, id core.ID) (*core.Entity, error) {
	var result *core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEntityKey(id)
		var err error
		result, err = r.readEntity(tx, key)
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

// FindEntityByName finds an entity by exact, case-sensitive name match.
func (r *EntityRepository) FindEntityByName(ctx context.Context, name string) (*core.Entity, error) {
	var result *core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntityNameKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var entityID core.ID
		if err := item.Value(func(val []byte) error {
			var idErr error
			entityID, idErr = storage.UnmarshalID(val)
			return idErr
		}); err != nil {
			return err
		}

		result, err = r.readEntity(tx, makeEntityKey(entityID))
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

// ListEntities retrieves all entities.
func (r *EntityRepository) ListEntities(ctx context.Context) ([]*core.Entity, error) {
	var results []*core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entityPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entity *core.Entity
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				entity, unmarshalErr = storage.UnmarshalEntity(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			results = append(results, entity)
		}
		return nil
	}, false)
	return results, err
}

// AddMentions appends one or more mentions.
func (r *EntityRepository) AddMentions(ctx context.Context, mentions ...*core.Mention) ([]*core.Mention, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, mention := range mentions {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			mention.Id = core.ID(nextID)
			mention.InsertedAt = time.Now().UTC()

			// Store primary record
			key := makeMentionKey(mention.Id)
			value := storage.MarshalMention(mention)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update entity index
			entityKey := makeMentionEntityKey(mention.EntityId, mention.Id)
			if err := tx.Set(entityKey, storage.MarshalID(mention.Id)); err != nil {
				return err
			}

			// Update recording index
			recKey := makeMentionRecordingKey(mention.RecordingId, mention.Id)
			if err := tx.Set(recKey, storage.MarshalID(mention.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return mentions, err
}

// CountMentions returns the total number of mentions recorded for an entity.
func (r *EntityRepository) CountMentions(ctx context.Context, entityID core.ID) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makePartialMentionEntityKey(entityID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// GetMentionsByEntity retrieves all mentions of an entity, ordered by insertion.
func (r *EntityRepository) GetMentionsByEntity(ctx context.Context, entityID core.ID) ([]*core.Mention, error) {
	return r.mentionsByIndex(makePartialMentionEntityKey(entityID))
}

// GetMentionsByRecording retrieves all mentions cited from a recording.
func (r *EntityRepository) GetMentionsByRecording(ctx context.Context, recordingID string) ([]*core.Mention, error) {
	return r.mentionsByIndex(makePartialMentionRecordingKey(recordingID))
}

// Helper methods

// mentionsByIndex resolves mention IDs from an index prefix into full records.
func (r *EntityRepository) mentionsByIndex(prefix []byte) ([]*core.Mention, error) {
	var results []*core.Mention
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = slices.Clone(prefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var mentionID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var idErr error
				mentionID, idErr = storage.UnmarshalID(val)
				return idErr
			}); err != nil {
				return err
			}

			mention, err := r.readMention(tx, makeMentionKey(mentionID))
			if err != nil {
				return err
			}
			if mention != nil {
				results = append(results, mention)
			}
		}
		return nil
	}, false)
	return results, err
}

// readEntity reads an entity from the transaction.
func (r *EntityRepository) readEntity(tx *badger.Txn, key []byte) (*core.Entity, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entity *core.Entity
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entity, unmarshalErr = storage.UnmarshalEntity(val)
		return unmarshalErr
	})
	return entity, err
}

// readMention reads a mention from the transaction.
func (r *EntityRepository) readMention(tx *badger.Txn, key []byte) (*core.Mention, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var mention *core.Mention
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		mention, unmarshalErr = storage.UnmarshalMention(val)
		return unmarshalErr
	})
	return mention, err
}
