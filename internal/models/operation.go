package models

import (
	"fmt"
	"sort"
	"time"
)

// OperationKind тип мутации, поставленной в очередь
type OperationKind string

// Поддерживаемые виды операций
const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid проверяет, что вид операции известен движку синхронизации
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// OperationStatus статус операции в очереди
type OperationStatus string

// Статусы операций. Успешная операция удаляется из очереди,
// а не переводится в отдельный статус.
const (
	StatusPending OperationStatus = "pending"
	StatusFailed  OperationStatus = "failed"
)

// ConflictStrategyLWW единственная реализованная стратегия разрешения
// конфликтов: запись клиента применяется независимо от конфликта,
// сам конфликт фиксируется в журнале.
const ConflictStrategyLWW = "last-write-wins"

// OperationMetadata дополнительные данные операции для проверки конфликтов
type OperationMetadata struct {
	// ConflictStrategy стратегия разрешения конфликтов.
	// Сейчас всегда last-write-wins, поле оставлено расширяемым.
	ConflictStrategy string `json:"conflict_strategy,omitempty"`

	// ExpectedVersionTimestamp версия записи, которую клиент считает
	// актуальной на сервере. 0 означает "нет ожидания" - проверка
	// конфликтов пропускается. Используется только для update.
	ExpectedVersionTimestamp int64 `json:"expected_version_timestamp,omitempty"`
}

// QueuedOperation представляет одну отложенную мутацию, ожидающую
// доставки на удаленный табличный сервис.
type QueuedOperation struct {
	EnqueuedAt    time.Time         `json:"enqueued_at"`     // EnqueuedAt время постановки в очередь, задает порядок воспроизведения
	LastAttemptAt time.Time         `json:"last_attempt_at"` // LastAttemptAt время последней неудачной попытки
	Payload       map[string]any    `json:"payload"`         // Payload непрозрачный набор полей (игнорируется для delete)
	ID            string            `json:"id"`              // ID уникальный идентификатор операции (UUID)
	Table         string            `json:"table"`           // Table логическое имя целевой коллекции
	Kind          OperationKind     `json:"kind"`            // Kind вид операции: create, update, delete
	RecordID      string            `json:"record_id"`       // RecordID идентификатор целевой записи (пусто для create)
	Status        OperationStatus   `json:"status"`          // Status pending или failed
	LastError     string            `json:"last_error"`      // LastError текст последней ошибки применения
	Metadata      OperationMetadata `json:"metadata"`        // Metadata данные для проверки конфликтов
	RetryCount    int               `json:"retry_count"`     // RetryCount количество неудачных попыток применения
}

// Validate проверяет обязательные поля операции.
// Неизвестный вид операции - ошибка программирования вызывающей стороны.
func (op *QueuedOperation) Validate() error {
	if !op.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperationKind, op.Kind)
	}
	if op.Table == "" {
		return fmt.Errorf("operation %s: table is required", op.ID)
	}
	if op.Kind != OperationCreate && op.RecordID == "" {
		return fmt.Errorf("operation %s: record id is required for %s", op.ID, op.Kind)
	}
	return nil
}

// Clone создает копию операции с собственным payload.
// Внутренняя очередь менеджера синхронизации отдает наружу только
// копии, чтобы внешний код не мог изменить ее состояние.
func (op *QueuedOperation) Clone() *QueuedOperation {
	clone := *op
	if op.Payload != nil {
		clone.Payload = make(map[string]any, len(op.Payload))
		for k, v := range op.Payload {
			clone.Payload[k] = v
		}
	}
	return &clone
}

// ConflictRecord неизменяемая запись журнала конфликтов.
// Ядро никогда не изменяет и не удаляет эти записи - это audit trail
// для ручного разбора.
type ConflictRecord struct {
	RecordedAt             time.Time `json:"recorded_at"`
	Table                  string    `json:"table"`
	RecordID               string    `json:"record_id"`
	Strategy               string    `json:"strategy"`
	PayloadKeys            []string  `json:"payload_keys"` // имена полей, без значений
	ServerVersionTimestamp int64     `json:"server_version_timestamp"`
	ClientVersionTimestamp int64     `json:"client_version_timestamp"`
}

// PayloadKeys возвращает отсортированные имена полей payload.
// В журнал конфликтов попадают только имена, не значения,
// чтобы не дублировать чувствительные данные.
func PayloadKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
