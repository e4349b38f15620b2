package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/salekeeper/salekeeper/internal/server/storage"
	"github.com/salekeeper/salekeeper/internal/validation"
	"github.com/salekeeper/salekeeper/pkg/api"
)

// DataHandler обрабатывает табличный CRUD API
type DataHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
}

// NewDataHandler creates a new data handler
func NewDataHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *DataHandler {
	return &DataHandler{
		logger:  logger,
		storage: recordStorage,
	}
}

// Register регистрирует маршруты табличного API
func (h *DataHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/data/{table}", h.HandleInsert)
	mux.HandleFunc("PUT /api/v1/data/{table}/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/v1/data/{table}/{id}", h.HandleDelete)
	mux.HandleFunc("GET /api/v1/data/{table}/{id}/version", h.HandleSelectVersion)
}

// HandleInsert обрабатывает POST /api/v1/data/{table}
func (h *DataHandler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := r.PathValue("table")

	if err := validation.ValidateTableName(table); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req api.InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now()
	record := &storage.StoredRecord{
		Table:            table,
		ID:               uuid.New().String(),
		Fields:           req.Fields,
		VersionTimestamp: now.UnixMilli(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := h.storage.InsertRecord(ctx, record); err != nil {
		h.logger.Error("Failed to insert record", "table", table, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("Record inserted", "table", table, "record_id", record.ID)

	h.writeRecord(w, http.StatusCreated, record)
}

// HandleUpdate обрабатывает PUT /api/v1/data/{table}/{id}
func (h *DataHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := r.PathValue("table")
	id := r.PathValue("id")

	var req api.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Новая версия назначается сервером и строго растет даже при
	// нескольких записях в одну миллисекунду
	version := time.Now().UnixMilli()
	if existing, err := h.storage.GetRecord(ctx, table, id); err == nil && version <= existing.VersionTimestamp {
		version = existing.VersionTimestamp + 1
	}

	record, err := h.storage.UpdateRecord(ctx, table, id, req.Fields, version)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			h.writeError(w, http.StatusNotFound, "record not found")
			return
		}
		h.logger.Error("Failed to update record", "table", table, "record_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("Record updated", "table", table, "record_id", id, "version", record.VersionTimestamp)

	h.writeRecord(w, http.StatusOK, record)
}

// HandleDelete обрабатывает DELETE /api/v1/data/{table}/{id}
func (h *DataHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := r.PathValue("table")
	id := r.PathValue("id")

	if err := h.storage.DeleteRecord(ctx, table, id); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			h.writeError(w, http.StatusNotFound, "record not found")
			return
		}
		h.logger.Error("Failed to delete record", "table", table, "record_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("Record deleted", "table", table, "record_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// HandleSelectVersion обрабатывает GET /api/v1/data/{table}/{id}/version
func (h *DataHandler) HandleSelectVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := r.PathValue("table")
	id := r.PathValue("id")

	record, err := h.storage.GetRecord(ctx, table, id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			h.writeError(w, http.StatusNotFound, "record not found")
			return
		}
		h.logger.Error("Failed to get record", "table", table, "record_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, api.VersionResponse{
		VersionTimestamp: record.VersionTimestamp,
	})
}

// writeRecord сериализует запись в API формат
func (h *DataHandler) writeRecord(w http.ResponseWriter, status int, record *storage.StoredRecord) {
	h.writeJSON(w, status, api.Record{
		ID:               record.ID,
		Table:            record.Table,
		Fields:           record.Fields,
		VersionTimestamp: record.VersionTimestamp,
	})
}

// writeJSON отправляет JSON ответ
func (h *DataHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// writeError отправляет JSON ошибку
func (h *DataHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: message})
}
