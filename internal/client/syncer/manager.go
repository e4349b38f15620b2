package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/salekeeper/salekeeper/internal/client/api"
	"github.com/salekeeper/salekeeper/internal/client/conflict"
	"github.com/salekeeper/salekeeper/internal/client/storage"
	"github.com/salekeeper/salekeeper/internal/models"
	"github.com/salekeeper/salekeeper/pkg/api"
)

// Состояния гидратации очереди из durable store.
// Каждая мутирующая операция прозрачно дожидается stateReady,
// поэтому порядок вызовов до и после гидратации неразличим снаружи.
const (
	stateUninitialized int32 = iota
	stateHydrating
	stateReady
)

// Config параметры менеджера синхронизации
type Config struct {
	// MaxRetries максимальное количество неудачных попыток применения,
	// после которого операция переводится в failed
	MaxRetries int

	// StatusInterval период фоновой рассылки статуса в Run
	StatusInterval time.Duration

	// StrictPersist если true, Enqueue возвращает ошибку записи в
	// durable store вызывающей стороне вместо проглатывания. Операция
	// в любом случае остается в очереди текущей сессии.
	StrictPersist bool
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		MaxRetries:     3,
		StatusInterval: 4 * time.Second,
	}
}

// SyncResult результат одного прохода синхронизации
type SyncResult struct {
	Synced     int  // количество успешно примененных операций
	Failed     int  // количество неудачных попыток применения в этом проходе
	InProgress bool // true если проход уже выполнялся и новый не запускался
}

// ExecuteRequest описывает мутацию для немедленного выполнения
type ExecuteRequest struct {
	Payload  map[string]any
	Metadata *models.OperationMetadata
	Table    string
	RecordID string
	Kind     models.OperationKind
}

// ExecuteResult результат немедленного выполнения мутации.
// Queued=true означает, что связность пропала в момент выполнения
// и мутация прозрачно поставлена в очередь.
type ExecuteResult struct {
	Record      *api.Record
	OperationID string
	Queued      bool
}

// Manager владеет очередью отложенных операций: in-memory очередь
// зеркалируется в durable store, проход синхронизации воспроизводит
// операции на удаленном сервисе строго в порядке постановки.
//
// Очередь изменяется только методами самого менеджера. Проходы
// синхронизации никогда не выполняются параллельно: конкурирующий
// вызов SyncQueue получает InProgress и должен повторить позже.
type Manager struct {
	cfg       Config
	apiClient httpClient.ClientAPI
	store     storage.QueueStorage
	detector  *conflict.Detector
	logger    *slog.Logger

	broadcast *broadcaster

	mu           sync.Mutex
	queue        []*models.QueuedOperation
	lastSyncedAt time.Time

	state   atomic.Int32
	ready   chan struct{}
	online  atomic.Bool
	syncing atomic.Bool
}

// NewManager creates a new sync manager.
// Гидратация очереди из store выполняется лениво при первом обращении.
func NewManager(cfg Config, apiClient httpClient.ClientAPI, store storage.QueueStorage, detector *conflict.Detector, logger *slog.Logger) *Manager {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	if cfg.StatusInterval <= 0 {
		cfg.StatusInterval = DefaultConfig().StatusInterval
	}

	m := &Manager{
		cfg:       cfg,
		apiClient: apiClient,
		store:     store,
		detector:  detector,
		logger:    logger,
		broadcast: newBroadcaster(),
		ready:     make(chan struct{}),
	}
	m.online.Store(true)

	return m
}

// awaitReady дожидается завершения гидратации, запуская ее при первом
// обращении. Гидратация выполняется ровно один раз за время жизни
// процесса.
func (m *Manager) awaitReady(ctx context.Context) error {
	if m.state.CompareAndSwap(stateUninitialized, stateHydrating) {
		m.hydrate(ctx)
		return nil
	}

	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// hydrate читает очередь из durable store.
// Нечитаемое состояние деградирует до пустой очереди: клиент должен
// стартовать даже с поврежденным локальным хранилищем.
func (m *Manager) hydrate(ctx context.Context) {
	defer func() {
		m.state.Store(stateReady)
		close(m.ready)
	}()

	ops, err := m.store.GetAllOperations(ctx)
	if err != nil {
		m.logger.Warn("Failed to hydrate queue from store, starting empty", "error", err)
		return
	}

	// Воспроизведение идет в порядке постановки
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].EnqueuedAt.Equal(ops[j].EnqueuedAt) {
			return ops[i].ID < ops[j].ID
		}
		return ops[i].EnqueuedAt.Before(ops[j].EnqueuedAt)
	})

	m.mu.Lock()
	m.queue = ops
	m.mu.Unlock()

	m.logger.Info("Queue hydrated from store", "operations", len(ops))
}

// SetOnline принимает сигнал связности от окружения и рассылает статус
func (m *Manager) SetOnline(online bool) {
	if m.online.Swap(online) != online {
		m.logger.Info("Connectivity changed", "online", online)
		m.publishStatus()
	}
}

// IsOnline возвращает последнее известное состояние связности
func (m *Manager) IsOnline() bool {
	return m.online.Load()
}

// Enqueue ставит мутацию в очередь: операция получает клиентский id,
// попадает в in-memory очередь и сразу персистится в store.
//
// Ошибка записи в store по умолчанию логируется и проглатывается -
// очередь текущей сессии остается авторитетной (StrictPersist меняет
// эту политику). Неизвестный вид операции - ошибка вызывающей стороны
// и возвращается всегда.
func (m *Manager) Enqueue(ctx context.Context, table string, kind models.OperationKind, payload map[string]any, recordID string, meta *models.OperationMetadata) (string, error) {
	if err := m.awaitReady(ctx); err != nil {
		return "", err
	}

	op := &models.QueuedOperation{
		ID:         uuid.New().String(),
		Table:      table,
		Kind:       kind,
		Payload:    payload,
		RecordID:   recordID,
		Status:     models.StatusPending,
		EnqueuedAt: time.Now(),
	}
	if meta != nil {
		op.Metadata = *meta
	}
	if op.Metadata.ConflictStrategy == "" {
		op.Metadata.ConflictStrategy = models.ConflictStrategyLWW
	}

	if err := op.Validate(); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.queue = append(m.queue, op)
	m.mu.Unlock()

	m.logger.Info("Operation enqueued",
		"operation_id", op.ID,
		"table", op.Table,
		"kind", op.Kind)

	if err := m.store.PutOperation(ctx, op); err != nil {
		m.logger.Warn("Failed to persist queued operation",
			"operation_id", op.ID,
			"error", err)
		if m.cfg.StrictPersist {
			m.publishStatus()
			return op.ID, fmt.Errorf("failed to persist operation %s: %w", op.ID, err)
		}
	}

	m.publishStatus()

	return op.ID, nil
}

// RemoveOperation удаляет операцию из очереди и из store
func (m *Manager) RemoveOperation(ctx context.Context, id string) error {
	if err := m.awaitReady(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	removed := m.removeLocked(id)
	m.mu.Unlock()

	if !removed {
		return fmt.Errorf("%w: %s", storage.ErrOperationNotFound, id)
	}

	if err := m.store.DeleteOperation(ctx, id); err != nil {
		m.logger.Warn("Failed to delete operation from store",
			"operation_id", id,
			"error", err)
	}

	m.publishStatus()

	return nil
}

// UpdateOperationStatus изменяет статус операции только в памяти.
// Запись в store происходит отдельно и только для терминального failed
// состояния, чтобы не персистить каждую неудачную попытку.
func (m *Manager) UpdateOperationStatus(ctx context.Context, id string, status models.OperationStatus, lastError string) error {
	if err := m.awaitReady(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	op := m.findLocked(id)
	if op != nil {
		op.Status = status
		op.LastError = lastError
		if lastError != "" {
			op.LastAttemptAt = time.Now()
		}
	}
	m.mu.Unlock()

	if op == nil {
		return fmt.Errorf("%w: %s", storage.ErrOperationNotFound, id)
	}

	m.publishStatus()

	return nil
}

// RetryOperation возвращает failed операцию в pending со сброшенным
// счетчиком попыток. Ручное вмешательство оператора.
func (m *Manager) RetryOperation(ctx context.Context, id string) error {
	if err := m.awaitReady(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	op := m.findLocked(id)
	if op != nil {
		op.Status = models.StatusPending
		op.RetryCount = 0
		op.LastError = ""
	}
	m.mu.Unlock()

	if op == nil {
		return fmt.Errorf("%w: %s", storage.ErrOperationNotFound, id)
	}

	if err := m.store.PutOperation(ctx, op); err != nil {
		m.logger.Warn("Failed to persist retried operation",
			"operation_id", id,
			"error", err)
	}

	m.publishStatus()

	return nil
}

// ListOperations возвращает копии операций очереди в порядке постановки
func (m *Manager) ListOperations(ctx context.Context) ([]*models.QueuedOperation, error) {
	if err := m.awaitReady(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ops := make([]*models.QueuedOperation, 0, len(m.queue))
	for _, op := range m.queue {
		ops = append(ops, op.Clone())
	}
	return ops, nil
}

// SyncQueue выполняет один проход синхронизации: воспроизводит
// отложенные операции на удаленном сервисе строго последовательно в
// порядке постановки. Параллельные проходы исключены: если проход уже
// идет, возвращается InProgress без каких-либо побочных эффектов.
func (m *Manager) SyncQueue(ctx context.Context) (*SyncResult, error) {
	if err := m.awaitReady(ctx); err != nil {
		return nil, err
	}

	// Атомарный in-progress guard
	if !m.syncing.CompareAndSwap(false, true) {
		return &SyncResult{InProgress: true}, nil
	}
	defer m.syncing.Store(false)

	batch := m.eligibleBatch()
	if len(batch) == 0 {
		// Нечего синхронизировать - без побочных эффектов
		return &SyncResult{}, nil
	}

	m.logger.Info("Sync pass started", "operations", len(batch))

	result := &SyncResult{}

	// Строго последовательно: update или delete могут зависеть от
	// create, стоящего раньше в той же пачке
	for _, op := range batch {
		if ctx.Err() != nil {
			break
		}

		err := m.applyOperation(ctx, op)
		if err == nil {
			m.completeOperation(ctx, op)
			result.Synced++
			continue
		}

		if httpClient.IsConnectivityError(err) {
			// Связность пропала посреди прохода: операция остается
			// pending, попытка не засчитывается
			m.logger.Info("Connectivity lost during sync pass, stopping",
				"operation_id", op.ID)
			break
		}

		m.failAttempt(ctx, op, err)
		result.Failed++
	}

	if result.Synced > 0 {
		m.mu.Lock()
		m.lastSyncedAt = time.Now()
		m.mu.Unlock()
	}

	m.logger.Info("Sync pass finished",
		"synced", result.Synced,
		"failed", result.Failed)

	// Статус рассылается по завершении прохода независимо от исхода
	m.publishStatus()

	return result, nil
}

// RequestSync внешний триггер синхронизации (реконнект, background
// wake). Эквивалентен SyncQueue.
func (m *Manager) RequestSync(ctx context.Context) (*SyncResult, error) {
	return m.SyncQueue(ctx)
}

// ExecuteNow применяет мутацию напрямую к удаленному сервису, минуя
// очередь. Если попытка падает из-за потери связности, мутация
// прозрачно ставится в очередь и возвращается Queued-результат вместо
// ошибки. Apply failures возвращаются вызывающей стороне как есть.
func (m *Manager) ExecuteNow(ctx context.Context, req ExecuteRequest) (*ExecuteResult, error) {
	if err := m.awaitReady(ctx); err != nil {
		return nil, err
	}

	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownOperationKind, req.Kind)
	}

	record, err := m.applyRequest(ctx, req)
	if err == nil {
		return &ExecuteResult{Record: record}, nil
	}

	if !httpClient.IsConnectivityError(err) {
		return nil, err
	}

	// Связность пропала в полете - откатываемся на очередь
	m.logger.Info("Connectivity lost mid-execution, falling back to queue",
		"table", req.Table,
		"kind", req.Kind)

	opID, err := m.Enqueue(ctx, req.Table, req.Kind, req.Payload, req.RecordID, req.Metadata)
	if err != nil {
		return nil, fmt.Errorf("fallback enqueue failed: %w", err)
	}

	return &ExecuteResult{Queued: true, OperationID: opID}, nil
}

// Status возвращает текущий снимок состояния очереди
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusLocked()
}

// Subscribe регистрирует слушателя статуса и возвращает функцию отписки
func (m *Manager) Subscribe(listener StatusListener) func() {
	return m.broadcast.subscribe(listener)
}

// Run рассылает статус по фоновому таймеру до отмены контекста
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.StatusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.publishStatus()
		}
	}
}

// eligibleBatch выбирает операции для прохода: pending плюс failed с
// неисчерпанным лимитом попыток, в порядке постановки
func (m *Manager) eligibleBatch() []*models.QueuedOperation {
	m.mu.Lock()
	defer m.mu.Unlock()

	var batch []*models.QueuedOperation
	for _, op := range m.queue {
		switch op.Status {
		case models.StatusPending:
			batch = append(batch, op)
		case models.StatusFailed:
			if op.RetryCount < m.cfg.MaxRetries {
				batch = append(batch, op)
			}
		}
	}

	sort.Slice(batch, func(i, j int) bool {
		if batch[i].EnqueuedAt.Equal(batch[j].EnqueuedAt) {
			return batch[i].ID < batch[j].ID
		}
		return batch[i].EnqueuedAt.Before(batch[j].EnqueuedAt)
	})

	return batch
}

// applyOperation применяет одну операцию очереди к удаленному сервису
func (m *Manager) applyOperation(ctx context.Context, op *models.QueuedOperation) error {
	_, err := m.applyRequest(ctx, ExecuteRequest{
		Table:    op.Table,
		Kind:     op.Kind,
		Payload:  op.Payload,
		RecordID: op.RecordID,
		Metadata: &op.Metadata,
	})
	return err
}

// applyRequest выполняет мутацию согласно ее виду.
// Для update с ожидаемой версией сначала выполняется best-effort
// проверка конфликта; запись применяется безусловно (last-write-wins).
func (m *Manager) applyRequest(ctx context.Context, req ExecuteRequest) (*api.Record, error) {
	switch req.Kind {
	case models.OperationCreate:
		return m.apiClient.Insert(ctx, req.Table, req.Payload)

	case models.OperationUpdate:
		if req.Metadata != nil && req.Metadata.ExpectedVersionTimestamp != 0 {
			m.detector.Check(ctx, req.Table, req.RecordID, req.Metadata.ExpectedVersionTimestamp, req.Payload)
		}
		return m.apiClient.Update(ctx, req.Table, req.RecordID, req.Payload)

	case models.OperationDelete:
		return nil, m.apiClient.Delete(ctx, req.Table, req.RecordID)

	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownOperationKind, req.Kind)
	}
}

// completeOperation убирает успешно примененную операцию из очереди и
// из store. Операция покидает очередь тогда и только тогда, когда
// удаленный сервис подтвердил применение.
func (m *Manager) completeOperation(ctx context.Context, op *models.QueuedOperation) {
	m.mu.Lock()
	m.removeLocked(op.ID)
	m.mu.Unlock()

	if err := m.store.DeleteOperation(ctx, op.ID); err != nil {
		m.logger.Warn("Failed to delete synced operation from store",
			"operation_id", op.ID,
			"error", err)
	}

	m.logger.Info("Operation synced",
		"operation_id", op.ID,
		"table", op.Table,
		"kind", op.Kind)
}

// failAttempt учитывает неудачную попытку применения.
// Операция остается pending до исчерпания лимита попыток, затем
// переводится в failed и в этом терминальном состоянии персистится -
// единственный случай, когда ошибка должна пережить сессию.
func (m *Manager) failAttempt(ctx context.Context, op *models.QueuedOperation, applyErr error) {
	m.mu.Lock()
	op.RetryCount++
	op.LastError = applyErr.Error()
	op.LastAttemptAt = time.Now()

	if errors.Is(applyErr, models.ErrUnknownOperationKind) {
		// Ошибка программирования: повторы бессмысленны
		op.RetryCount = m.cfg.MaxRetries
	}

	exhausted := op.RetryCount >= m.cfg.MaxRetries
	if exhausted {
		op.Status = models.StatusFailed
	}
	m.mu.Unlock()

	if errors.Is(applyErr, models.ErrUnknownOperationKind) {
		m.logger.Error("Unknown operation kind in queue",
			"operation_id", op.ID,
			"kind", op.Kind)
	} else {
		m.logger.Warn("Operation apply failed",
			"operation_id", op.ID,
			"table", op.Table,
			"retry_count", op.RetryCount,
			"error", applyErr)
	}

	if exhausted {
		if err := m.store.PutOperation(ctx, op); err != nil {
			m.logger.Warn("Failed to persist failed operation",
				"operation_id", op.ID,
				"error", err)
		}
	}
}

// findLocked ищет операцию по id. Вызывается под mu.
func (m *Manager) findLocked(id string) *models.QueuedOperation {
	for _, op := range m.queue {
		if op.ID == id {
			return op
		}
	}
	return nil
}

// removeLocked удаляет операцию из in-memory очереди. Вызывается под mu.
func (m *Manager) removeLocked(id string) bool {
	for i, op := range m.queue {
		if op.ID == id {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return true
		}
	}
	return false
}

// statusLocked собирает снимок состояния. Вызывается под mu.
func (m *Manager) statusLocked() Status {
	status := Status{
		LastSyncedAt: m.lastSyncedAt,
		QueueSize:    len(m.queue),
		Syncing:      m.syncing.Load(),
		IsOnline:     m.online.Load(),
	}

	for _, op := range m.queue {
		switch op.Status {
		case models.StatusPending:
			status.Pending++
		case models.StatusFailed:
			status.Failed++
		}
	}

	status.HasPending = status.Pending > 0
	status.HasFailed = status.Failed > 0

	return status
}

// publishStatus рассылает текущий снимок слушателям
func (m *Manager) publishStatus() {
	m.mu.Lock()
	status := m.statusLocked()
	m.mu.Unlock()

	m.broadcast.publish(status)
}
