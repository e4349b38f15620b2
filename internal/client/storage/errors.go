package storage

import "errors"

// Common client storage errors
var (
	// ErrOperationNotFound indicates that queued operation was not found
	ErrOperationNotFound = errors.New("queued operation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
