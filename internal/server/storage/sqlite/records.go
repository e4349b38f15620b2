package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salekeeper/salekeeper/internal/server/storage"
)

// InsertRecord creates a new record
// Returns ErrRecordExists if a record with the same id already exists
func (s *Storage) InsertRecord(ctx context.Context, record *storage.StoredRecord) error {
	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	query := `
		INSERT INTO records (table_name, id, fields, version_ts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		record.Table,
		record.ID,
		string(fields),
		record.VersionTimestamp,
		record.CreatedAt.Unix(),
		record.UpdatedAt.Unix(),
	)
	if err != nil {
		// Нарушение первичного ключа - запись уже существует
		if isUniqueViolation(err) {
			return storage.ErrRecordExists
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// UpdateRecord replaces record fields and assigns a new version
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) UpdateRecord(ctx context.Context, table, id string, fields map[string]any, version int64) (*storage.StoredRecord, error) {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	now := time.Now()

	query := `
		UPDATE records
		SET fields = ?, version_ts = ?, updated_at = ?
		WHERE table_name = ? AND id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(fieldsJSON),
		version,
		now.Unix(),
		table,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrRecordNotFound
	}

	return s.GetRecord(ctx, table, id)
}

// DeleteRecord removes a record
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) DeleteRecord(ctx context.Context, table, id string) error {
	query := `DELETE FROM records WHERE table_name = ? AND id = ?`

	result, err := s.db.ExecContext(ctx, query, table, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// GetRecord retrieves a record by table and id
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) GetRecord(ctx context.Context, table, id string) (*storage.StoredRecord, error) {
	query := `
		SELECT table_name, id, fields, version_ts, created_at, updated_at
		FROM records
		WHERE table_name = ? AND id = ?
	`

	var (
		record     storage.StoredRecord
		fieldsJSON string
		createdAt  int64
		updatedAt  int64
	)

	err := s.db.QueryRowContext(ctx, query, table, id).Scan(
		&record.Table,
		&record.ID,
		&fieldsJSON,
		&record.VersionTimestamp,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}

	record.CreatedAt = time.Unix(createdAt, 0)
	record.UpdatedAt = time.Unix(updatedAt, 0)

	return &record, nil
}

// isUniqueViolation проверяет ошибку нарушения уникальности SQLite
func isUniqueViolation(err error) bool {
	// modernc.org/sqlite не экспортирует типизированные ошибки
	// ограничений, проверяем текст
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
