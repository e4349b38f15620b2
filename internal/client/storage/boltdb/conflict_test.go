package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salekeeper/salekeeper/internal/models"
)

func createTestConflict(table, recordID string, serverTS, clientTS int64) *models.ConflictRecord {
	return &models.ConflictRecord{
		Table:                  table,
		RecordID:               recordID,
		ServerVersionTimestamp: serverTS,
		ClientVersionTimestamp: clientTS,
		Strategy:               models.ConflictStrategyLWW,
		PayloadKeys:            []string{"status"},
		RecordedAt:             time.Now(),
	}
}

func TestStorage_AppendConflict(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AppendConflict(ctx, createTestConflict("jobs", "42", 200, 100)))

	records, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "jobs", records[0].Table)
	assert.Equal(t, "42", records[0].RecordID)
	assert.Equal(t, int64(200), records[0].ServerVersionTimestamp)
	assert.Equal(t, int64(100), records[0].ClientVersionTimestamp)
	assert.Equal(t, models.ConflictStrategyLWW, records[0].Strategy)
	assert.Equal(t, []string{"status"}, records[0].PayloadKeys)
}

func TestStorage_AppendConflict_AppendOnly(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Одинаковые table/recordID не перезаписывают друг друга -
	// журнал только дополняется
	require.NoError(t, store.AppendConflict(ctx, createTestConflict("jobs", "42", 200, 100)))
	require.NoError(t, store.AppendConflict(ctx, createTestConflict("jobs", "42", 300, 200)))
	require.NoError(t, store.AppendConflict(ctx, createTestConflict("accounts", "7", 50, 10)))

	records, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Порядок добавления сохраняется
	assert.Equal(t, int64(200), records[0].ServerVersionTimestamp)
	assert.Equal(t, int64(300), records[1].ServerVersionTimestamp)
	assert.Equal(t, "accounts", records[2].Table)
}

func TestStorage_ListConflicts_Empty(t *testing.T) {
	store := createTestStorage(t)

	records, err := store.ListConflicts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
