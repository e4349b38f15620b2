package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salekeeper/salekeeper/internal/server/storage/sqlite"
	"github.com/salekeeper/salekeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	mux := http.NewServeMux()
	NewDataHandler(testLogger(), store).Register(mux)
	mux.HandleFunc("GET /health", HandleHealth)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decodeRecord(t *testing.T, resp *http.Response) api.Record {
	t.Helper()
	defer resp.Body.Close()

	var record api.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))

	return record
}

func TestDataHandler_Insert(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/data/clients", api.InsertRequest{
		Fields: map[string]any{"name": "Acme"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	record := decodeRecord(t, resp)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "clients", record.Table)
	assert.Equal(t, "Acme", record.Fields["name"])
	assert.Positive(t, record.VersionTimestamp)
}

func TestDataHandler_Insert_InvalidTableName(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/data/BadTable", api.InsertRequest{
		Fields: map[string]any{"name": "Acme"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDataHandler_Insert_InvalidBody(t *testing.T) {
	srv := createTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/data/clients", bytes.NewBufferString("{broken"))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDataHandler_Update(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/data/clients", api.InsertRequest{
		Fields: map[string]any{"name": "Acme"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeRecord(t, resp)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/data/clients/"+created.ID, api.UpdateRequest{
		Fields: map[string]any{"name": "Globex"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeRecord(t, resp)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Globex", updated.Fields["name"])
	// Версия назначается сервером и строго растет
	assert.Greater(t, updated.VersionTimestamp, created.VersionTimestamp)
}

func TestDataHandler_Update_NotFound(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v1/data/clients/missing", api.UpdateRequest{
		Fields: map[string]any{"name": "Globex"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDataHandler_Delete(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/data/clients", api.InsertRequest{
		Fields: map[string]any{"name": "Acme"},
	})
	created := decodeRecord(t, resp)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/data/clients/"+created.ID, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/data/clients/"+created.ID+"/version", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDataHandler_Delete_NotFound(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/data/clients/missing", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDataHandler_SelectVersion(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/data/clients", api.InsertRequest{
		Fields: map[string]any{"name": "Acme"},
	})
	created := decodeRecord(t, resp)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/data/clients/"+created.ID+"/version", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var version api.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	assert.Equal(t, created.VersionTimestamp, version.VersionTimestamp)
}

func TestHandleHealth(t *testing.T) {
	srv := createTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
}
