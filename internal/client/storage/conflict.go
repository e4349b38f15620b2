package storage

import (
	"context"

	"github.com/salekeeper/salekeeper/internal/models"
)

//go:generate moq -out conflictlog_mock.go . ConflictLog

// ConflictLog defines interface for the append-only conflict audit log.
// Records are never mutated or deleted by the sync engine.
type ConflictLog interface {
	// AppendConflict appends a conflict record to the log
	AppendConflict(ctx context.Context, record *models.ConflictRecord) error

	// ListConflicts returns all recorded conflicts in append order.
	// The sync engine never reads the log for decision-making; this
	// exists for the operator CLI.
	ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error)
}
