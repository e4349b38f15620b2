package storage

import (
	"context"
	"time"
)

// StoredRecord представляет запись табличного сервиса
type StoredRecord struct {
	CreatedAt        time.Time      // CreatedAt время создания записи
	UpdatedAt        time.Time      // UpdatedAt время последнего обновления
	Fields           map[string]any // Fields непрозрачный набор полей записи
	ID               string         // ID идентификатор записи внутри таблицы
	Table            string         // Table логическое имя таблицы
	VersionTimestamp int64          // VersionTimestamp серверная версия (unix milliseconds)
}

// RecordStorage defines interface for server-side record persistence
type RecordStorage interface {
	// InsertRecord создает новую запись
	InsertRecord(ctx context.Context, record *StoredRecord) error

	// UpdateRecord заменяет поля записи и назначает новую версию.
	// Returns ErrRecordNotFound if record doesn't exist.
	UpdateRecord(ctx context.Context, table, id string, fields map[string]any, version int64) (*StoredRecord, error)

	// DeleteRecord удаляет запись.
	// Returns ErrRecordNotFound if record doesn't exist.
	DeleteRecord(ctx context.Context, table, id string) error

	// GetRecord возвращает запись по таблице и id.
	// Returns ErrRecordNotFound if record doesn't exist.
	GetRecord(ctx context.Context, table, id string) (*StoredRecord, error)
}
