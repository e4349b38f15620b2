package api

import (
	"context"

	"github.com/salekeeper/salekeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного табличного CRUD сервиса.
// Движок синхронизации не типизирует ошибки сервиса дальше разделения
// на connectivity-class (IsConnectivityError) и apply failures.
type ClientAPI interface {
	// Insert создает новую запись в таблице
	Insert(ctx context.Context, table string, payload map[string]any) (*api.Record, error)

	// Update обновляет запись по recordID (last-write-wins)
	Update(ctx context.Context, table, recordID string, payload map[string]any) (*api.Record, error)

	// Delete удаляет запись по recordID
	Delete(ctx context.Context, table, recordID string) error

	// SelectVersion возвращает текущий version timestamp записи.
	// Возвращает ErrRecordNotFound если записи нет.
	SelectVersion(ctx context.Context, table, recordID string) (int64, error)
}
