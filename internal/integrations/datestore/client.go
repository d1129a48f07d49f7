package datestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/storeclient"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент хранилища заблокированных дат
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища заблокированных дат.
// transport может быть nil — тогда используется транспорт по умолчанию.
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// List получает заблокированные даты одной категории
func (c *Client) List(ctx context.Context, category domain.Category) ([]domain.BlockedDate, error) {
	reqURL := fmt.Sprintf("%s/api/blocked-dates?type=%s", c.baseURL, url.QueryEscape(string(category)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, storeclient.Reject(ErrStoreRejected, resp)
	}

	var payloads []blockedDatePayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]domain.BlockedDate, 0, len(payloads))
	for i := range payloads {
		blocked, err := payloads[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse date %q: %v", ErrInvalidResponse, payloads[i].Date, err)
		}
		result = append(result, blocked)
	}

	return result, nil
}

// Block блокирует дату для категории; дата уходит полной ISO 8601-меткой
func (c *Client) Block(ctx context.Context, category domain.Category, date time.Time) (*domain.BlockedDate, error) {
	body, err := json.Marshal(blockDateRequest{
		Type: string(category),
		Date: date.Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/api/blocked-dates", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		// Дубликаты не проверяются на нашей стороне — вердикт хранилища
		// отдается вызывающему как есть
		return nil, storeclient.Reject(ErrStoreRejected, resp)
	}

	var payload blockedDatePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	blocked, err := payload.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse date %q: %v", ErrInvalidResponse, payload.Date, err)
	}

	return &blocked, nil
}

// Unblock снимает блокировку по идентификатору записи.
// Удаление по ID однозначно даже при продублированных датах.
func (c *Client) Unblock(ctx context.Context, id string) error {
	reqURL := fmt.Sprintf("%s/api/blocked-dates/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrBlockedDateNotFound
	default:
		return storeclient.Reject(ErrStoreRejected, resp)
	}
}
