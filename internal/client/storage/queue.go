package storage

import (
	"context"

	"github.com/salekeeper/salekeeper/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for durable persistence of queued operations
type QueueStorage interface {
	// PutOperation stores or overwrites an operation by its id.
	// Repeated puts with the same id are idempotent: the store keeps
	// only the latest content.
	PutOperation(ctx context.Context, op *models.QueuedOperation) error

	// DeleteOperation removes an operation by id.
	// Deleting a missing operation is not an error.
	DeleteOperation(ctx context.Context, id string) error

	// GetAllOperations returns all stored operations ordered by
	// EnqueuedAt. Corrupt entries are skipped, not surfaced.
	// Used once per process lifetime to hydrate the in-memory queue.
	GetAllOperations(ctx context.Context) ([]*models.QueuedOperation, error)
}
