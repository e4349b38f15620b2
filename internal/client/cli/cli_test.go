package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/salekeeper/salekeeper/internal/client/api"
	"github.com/salekeeper/salekeeper/internal/client/conflict"
	"github.com/salekeeper/salekeeper/internal/client/router"
	"github.com/salekeeper/salekeeper/internal/client/storage"
	"github.com/salekeeper/salekeeper/internal/client/syncer"
	"github.com/salekeeper/salekeeper/internal/models"
	"github.com/salekeeper/salekeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestCli(t *testing.T, apiMock httpClient.ClientAPI) (*Cli, *bytes.Buffer) {
	t.Helper()

	queueStore := &storage.QueueStorageMock{
		PutOperationFunc: func(ctx context.Context, op *models.QueuedOperation) error {
			return nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			return nil
		},
		GetAllOperationsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			return nil, nil
		},
	}
	conflictLog := &storage.ConflictLogMock{
		ListConflictsFunc: func(ctx context.Context) ([]*models.ConflictRecord, error) {
			return nil, nil
		},
	}

	detector := conflict.NewDetector(apiMock, conflictLog, testLogger())
	manager := syncer.NewManager(syncer.DefaultConfig(), apiMock, queueStore, detector, testLogger())
	execRouter := router.NewRouter(manager, testLogger())

	c := New(manager, execRouter, conflictLog)

	var buf bytes.Buffer
	c.out = &buf

	return c, &buf
}

func TestCli_Status_EmptyQueue(t *testing.T) {
	c, buf := createTestCli(t, &httpClient.ClientAPIMock{})

	require.NoError(t, c.Run(context.Background(), "status", nil))

	assert.Contains(t, buf.String(), "Connectivity: online")
	assert.Contains(t, buf.String(), "Queue size:   0")
	assert.Contains(t, buf.String(), "Last synced:  never")
	assert.Contains(t, buf.String(), "All local changes synchronized")
}

func TestCli_List_Empty(t *testing.T) {
	c, buf := createTestCli(t, &httpClient.ClientAPIMock{})

	require.NoError(t, c.Run(context.Background(), "list", nil))

	assert.Contains(t, buf.String(), "Queue is empty.")
}

func TestCli_Conflicts_Empty(t *testing.T) {
	c, buf := createTestCli(t, &httpClient.ClientAPIMock{})

	require.NoError(t, c.Run(context.Background(), "conflicts", nil))

	assert.Contains(t, buf.String(), "No conflicts recorded.")
}

func TestCli_Sync_EmptyQueue(t *testing.T) {
	c, buf := createTestCli(t, &httpClient.ClientAPIMock{})

	require.NoError(t, c.Run(context.Background(), "sync", nil))

	assert.Contains(t, buf.String(), "Sync complete: 0 synced, 0 failed")
}

func TestCli_Enqueue_Online(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		InsertFunc: func(ctx context.Context, table string, fields map[string]any) (*api.Record, error) {
			return &api.Record{ID: "r1", Table: table, Fields: fields, VersionTimestamp: 100}, nil
		},
	}
	c, buf := createTestCli(t, apiMock)

	err := c.Run(context.Background(), "enqueue", []string{"clients", "create", `{"name":"Acme"}`})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Mutation applied.")
	assert.Contains(t, buf.String(), "clients/r1")
	assert.Len(t, apiMock.InsertCalls(), 1)
}

func TestCli_Retry_MissingArg(t *testing.T) {
	c, _ := createTestCli(t, &httpClient.ClientAPIMock{})

	err := c.Run(context.Background(), "retry", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestCli_Discard_MissingArg(t *testing.T) {
	c, _ := createTestCli(t, &httpClient.ClientAPIMock{})

	err := c.Run(context.Background(), "discard", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestCli_UnknownCommand(t *testing.T) {
	c, _ := createTestCli(t, &httpClient.ClientAPIMock{})

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestParseEnqueueArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, req *syncer.ExecuteRequest)
	}{
		{
			name: "create with payload",
			args: []string{"clients", "create", `{"name":"Acme"}`},
			check: func(t *testing.T, req *syncer.ExecuteRequest) {
				assert.Equal(t, models.OperationCreate, req.Kind)
				assert.Equal(t, "Acme", req.Payload["name"])
				assert.Empty(t, req.RecordID)
			},
		},
		{
			name: "update with id and payload",
			args: []string{"sales", "update", "s1", `{"amount":5}`},
			check: func(t *testing.T, req *syncer.ExecuteRequest) {
				assert.Equal(t, models.OperationUpdate, req.Kind)
				assert.Equal(t, "s1", req.RecordID)
				assert.Equal(t, float64(5), req.Payload["amount"])
			},
		},
		{
			name: "delete with id",
			args: []string{"sales", "delete", "s1"},
			check: func(t *testing.T, req *syncer.ExecuteRequest) {
				assert.Equal(t, models.OperationDelete, req.Kind)
				assert.Equal(t, "s1", req.RecordID)
			},
		},
		{
			name:    "unknown kind",
			args:    []string{"sales", "upsert", "s1"},
			wantErr: true,
		},
		{
			name:    "create without payload",
			args:    []string{"sales", "create"},
			wantErr: true,
		},
		{
			name:    "invalid json payload",
			args:    []string{"sales", "create", "{broken"},
			wantErr: true,
		},
		{
			name:    "too few args",
			args:    []string{"sales"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseEnqueueArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, req)
		})
	}
}
