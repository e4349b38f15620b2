package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/salekeeper/salekeeper/internal/client/storage"
	"github.com/salekeeper/salekeeper/internal/models"
)

// PutOperation stores or overwrites a queued operation by its id.
// A repeated put with the same id replaces the previous content,
// so retry counters and statuses persist without duplicate entries.
func (s *Storage) PutOperation(ctx context.Context, op *models.QueuedOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем операцию в JSON
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket missing")
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(op.ID), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteOperation removes an operation by id.
// Deleting a missing operation is a no-op, not an error.
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.Delete([]byte(id))
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// GetAllOperations returns all stored operations sorted by EnqueuedAt.
// Corrupt entries are skipped: a damaged store degrades to a smaller
// queue rather than failing client startup.
func (s *Storage) GetAllOperations(ctx context.Context) ([]*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			// Нет bucket - возвращаем пустую очередь
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.QueuedOperation
			if err := json.Unmarshal(v, &op); err != nil {
				// Поврежденная запись - пропускаем
				return nil
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all operations: %w", err)
	}

	// Порядок вставки: EnqueuedAt растет с каждым enqueue,
	// ID разрешает равные времена детерминированно
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].EnqueuedAt.Equal(ops[j].EnqueuedAt) {
			return ops[i].ID < ops[j].ID
		}
		return ops[i].EnqueuedAt.Before(ops[j].EnqueuedAt)
	})

	return ops, nil
}
