package api

// Record представляет одну запись удаленного табличного сервиса
type Record struct {
	Fields           map[string]any `json:"fields"`
	ID               string         `json:"id"`
	Table            string         `json:"table"`
	VersionTimestamp int64          `json:"version_timestamp"`
}

// InsertRequest представляет запрос на создание записи
type InsertRequest struct {
	Fields map[string]any `json:"fields"`
}

// UpdateRequest представляет запрос на обновление записи
type UpdateRequest struct {
	Fields map[string]any `json:"fields"`
}

// VersionResponse представляет ответ на запрос версии записи.
// VersionTimestamp назначается сервером при каждой записи (unix milliseconds).
type VersionResponse struct {
	VersionTimestamp int64 `json:"version_timestamp"`
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
