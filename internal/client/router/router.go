package router

import (
	"context"
	"log/slog"

	"github.com/salekeeper/salekeeper/internal/client/syncer"
	"github.com/salekeeper/salekeeper/internal/models"
	"github.com/salekeeper/salekeeper/pkg/api"
)

//go:generate moq -out manager_mock.go . SyncManager

// SyncManager часть менеджера синхронизации, нужная маршрутизатору
type SyncManager interface {
	// IsOnline возвращает последнее известное состояние связности
	IsOnline() bool

	// Enqueue ставит мутацию в очередь отложенных операций
	Enqueue(ctx context.Context, table string, kind models.OperationKind, payload map[string]any, recordID string, meta *models.OperationMetadata) (string, error)

	// ExecuteNow применяет мутацию напрямую, с откатом в очередь при
	// потере связности
	ExecuteNow(ctx context.Context, req syncer.ExecuteRequest) (*syncer.ExecuteResult, error)
}

// Result результат маршрутизации мутации
type Result struct {
	Record      *api.Record // примененная запись (когда Queued=false)
	OperationID string      // id отложенной операции (когда Queued=true)
	Queued      bool
}

// Router решает, выполнять мутацию немедленно или ставить в очередь,
// исходя из текущей связности. Доменные модули ходят на удаленный
// сервис только через него.
type Router struct {
	manager SyncManager
	logger  *slog.Logger
}

// NewRouter creates a new execution router
func NewRouter(manager SyncManager, logger *slog.Logger) *Router {
	return &Router{
		manager: manager,
		logger:  logger,
	}
}

// QueueOrExecute выполняет мутацию немедленно, если клиент онлайн,
// иначе ставит в очередь. Если связность пропала уже в полете,
// результат отката из ExecuteNow передается без изменений.
func (r *Router) QueueOrExecute(ctx context.Context, req syncer.ExecuteRequest) (*Result, error) {
	if !r.manager.IsOnline() {
		opID, err := r.manager.Enqueue(ctx, req.Table, req.Kind, req.Payload, req.RecordID, req.Metadata)
		if err != nil {
			return nil, err
		}

		r.logger.Debug("Offline: mutation queued",
			"operation_id", opID,
			"table", req.Table,
			"kind", req.Kind)

		return &Result{Queued: true, OperationID: opID}, nil
	}

	execResult, err := r.manager.ExecuteNow(ctx, req)
	if err != nil {
		return nil, err
	}

	if execResult.Queued {
		return &Result{Queued: true, OperationID: execResult.OperationID}, nil
	}

	return &Result{Record: execResult.Record}, nil
}
