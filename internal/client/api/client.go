package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/salekeeper/salekeeper/pkg/api"
)

// Client представляет HTTP клиент табличного CRUD сервиса
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Insert создает новую запись в таблице
func (c *Client) Insert(ctx context.Context, table string, payload map[string]any) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/data/%s", url.PathEscape(table))
	err := c.doRequest(ctx, http.MethodPost, path, api.InsertRequest{Fields: payload}, &resp)
	if err != nil {
		return nil, fmt.Errorf("insert request failed: %w", err)
	}
	return &resp, nil
}

// Update обновляет запись по recordID
func (c *Client) Update(ctx context.Context, table, recordID string, payload map[string]any) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/data/%s/%s", url.PathEscape(table), url.PathEscape(recordID))
	err := c.doRequest(ctx, http.MethodPut, path, api.UpdateRequest{Fields: payload}, &resp)
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	return &resp, nil
}

// Delete удаляет запись по recordID
func (c *Client) Delete(ctx context.Context, table, recordID string) error {
	path := fmt.Sprintf("/api/v1/data/%s/%s", url.PathEscape(table), url.PathEscape(recordID))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// SelectVersion возвращает текущий version timestamp записи
func (c *Client) SelectVersion(ctx context.Context, table, recordID string) (int64, error) {
	var resp api.VersionResponse
	path := fmt.Sprintf("/api/v1/data/%s/%s/version", url.PathEscape(table), url.PathEscape(recordID))
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return 0, fmt.Errorf("select version request failed: %w", err)
	}
	return resp.VersionTimestamp, nil
}

// doRequest выполняет HTTP запрос.
// Транспортные ошибки (запрос не дошел до сервера) оборачиваются в
// ErrUnavailable, чтобы вызывающая сторона могла отличить потерю
// связности от отказа сервиса применить запись.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сервер недоступен: DNS, connection refused, timeout
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode == http.StatusNotFound {
		return ErrRecordNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
