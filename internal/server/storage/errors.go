package storage

import "errors"

// Common server storage errors
var (
	// ErrRecordNotFound indicates that record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordExists indicates that record with the same id already exists
	ErrRecordExists = errors.New("record already exists")
)
