package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse ответ health check эндпоинта
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealth обрабатывает GET /health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}
