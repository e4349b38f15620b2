package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salekeeper/salekeeper/internal/models"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// createTestOperation создает тестовую операцию очереди
func createTestOperation(id, table string, kind models.OperationKind, enqueuedAt time.Time) *models.QueuedOperation {
	op := &models.QueuedOperation{
		ID:         id,
		Table:      table,
		Kind:       kind,
		Payload:    map[string]any{"name": "test-" + id},
		Status:     models.StatusPending,
		EnqueuedAt: enqueuedAt,
		Metadata: models.OperationMetadata{
			ConflictStrategy: models.ConflictStrategyLWW,
		},
	}
	if kind != models.OperationCreate {
		op.RecordID = "rec-" + id
	}
	return op
}

func TestStorage_PutOperation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	op := createTestOperation("op-1", "accounts", models.OperationCreate, time.Now())
	require.NoError(t, store.PutOperation(ctx, op))

	ops, err := store.GetAllOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "op-1", ops[0].ID)
	assert.Equal(t, "accounts", ops[0].Table)
	assert.Equal(t, models.OperationCreate, ops[0].Kind)
	assert.Equal(t, models.StatusPending, ops[0].Status)
}

func TestStorage_PutOperation_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	op := createTestOperation("op-1", "accounts", models.OperationUpdate, time.Now())
	require.NoError(t, store.PutOperation(ctx, op))

	// Повторный put с тем же id и измененным содержимым
	op.RetryCount = 2
	op.Status = models.StatusFailed
	op.LastError = "apply rejected"
	require.NoError(t, store.PutOperation(ctx, op))

	ops, err := store.GetAllOperations(ctx)
	require.NoError(t, err)

	// Хранилище содержит только последнюю версию, не две записи
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].RetryCount)
	assert.Equal(t, models.StatusFailed, ops[0].Status)
	assert.Equal(t, "apply rejected", ops[0].LastError)
}

func TestStorage_DeleteOperation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	op := createTestOperation("op-1", "quotes", models.OperationDelete, time.Now())
	require.NoError(t, store.PutOperation(ctx, op))
	require.NoError(t, store.DeleteOperation(ctx, "op-1"))

	ops, err := store.GetAllOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestStorage_DeleteOperation_Missing(t *testing.T) {
	store := createTestStorage(t)

	// Удаление несуществующей операции не является ошибкой
	assert.NoError(t, store.DeleteOperation(context.Background(), "no-such-op"))
}

func TestStorage_GetAllOperations_OrderedByEnqueuedAt(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	base := time.Now()

	// Кладем в хранилище в перемешанном порядке
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-c", "accounts", models.OperationCreate, base.Add(2*time.Second))))
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-a", "quotes", models.OperationCreate, base)))
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-b", "territories", models.OperationCreate, base.Add(time.Second))))

	ops, err := store.GetAllOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.Equal(t, "op-a", ops[0].ID)
	assert.Equal(t, "op-b", ops[1].ID)
	assert.Equal(t, "op-c", ops[2].ID)
}

func TestStorage_GetAllOperations_Empty(t *testing.T) {
	store := createTestStorage(t)

	ops, err := store.GetAllOperations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestStorage_Closed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	store.db = nil

	ctx := context.Background()
	op := createTestOperation("op-1", "accounts", models.OperationCreate, time.Now())

	assert.Error(t, store.PutOperation(ctx, op))
	assert.Error(t, store.DeleteOperation(ctx, "op-1"))

	_, err = store.GetAllOperations(ctx)
	assert.Error(t, err)
}
