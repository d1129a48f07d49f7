package roomstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
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

// Client клиент хранилища типов комнат
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища типов комнат.
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

// List получает полный список типов комнат со встроенными комнатами
func (c *Client) List(ctx context.Context) ([]domain.RoomType, error) {
	reqURL := fmt.Sprintf("%s/api/room-types", c.baseURL)

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

	var payloads []roomTypePayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomainList(payloads), nil
}

// Create создает тип комнаты multipart-формой: name, basePrice, seasonalPrice,
// amenities и roomNumbers (JSON-массивы), photos (файлы)
func (c *Client) Create(ctx context.Context, createReq *CreateRoomTypeRequest) (*domain.RoomType, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writeCreateForm(writer, createReq); err != nil {
		return nil, fmt.Errorf("%w: failed to build multipart form: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize multipart form: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/api/room-types", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, storeclient.Reject(ErrDuplicateRoom, resp)
	default:
		return nil, storeclient.Reject(ErrStoreRejected, resp)
	}

	var payload roomTypePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	created := payload.toDomain()
	return &created, nil
}

// Delete удаляет тип комнаты по идентификатору
func (c *Client) Delete(ctx context.Context, roomTypeID string) error {
	reqURL := fmt.Sprintf("%s/api/room-types/%s", c.baseURL, url.PathEscape(roomTypeID))

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
		return ErrRoomTypeNotFound
	default:
		return storeclient.Reject(ErrStoreRejected, resp)
	}
}

// AddRoom добавляет комнату с указанным номером в тип
func (c *Client) AddRoom(ctx context.Context, roomTypeID, number string) (*domain.RoomType, error) {
	reqURL := fmt.Sprintf("%s/api/room-types/%s/add-room", c.baseURL, url.PathEscape(roomTypeID))

	return c.putJSON(ctx, reqURL, addRoomPayload{Number: number})
}

// UpdateRoomStatus обновляет статус ровно одной комнаты, адресуемой ключом
func (c *Client) UpdateRoomStatus(ctx context.Context, key domain.RoomKey, patch *RoomStatusPatch) (*domain.RoomType, error) {
	reqURL := fmt.Sprintf("%s/api/room-types/%s/room-status/%s",
		c.baseURL, url.PathEscape(key.RoomTypeID), url.PathEscape(key.Number))

	return c.putJSON(ctx, reqURL, patch)
}

// putJSON выполняет PUT с JSON-телом и разбирает обновленный тип комнаты
func (c *Client) putJSON(ctx context.Context, reqURL string, payload interface{}) (*domain.RoomType, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
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
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	case http.StatusConflict:
		return nil, storeclient.Reject(ErrDuplicateRoom, resp)
	default:
		return nil, storeclient.Reject(ErrStoreRejected, resp)
	}

	var result roomTypePayload
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	updated := result.toDomain()
	return &updated, nil
}

// writeCreateForm пишет поля формы создания типа комнаты
func writeCreateForm(writer *multipart.Writer, createReq *CreateRoomTypeRequest) error {
	if err := writer.WriteField("name", createReq.Name); err != nil {
		return err
	}
	if err := writer.WriteField("basePrice", strconv.FormatFloat(createReq.BasePrice, 'f', -1, 64)); err != nil {
		return err
	}
	if createReq.SeasonalPrice != nil {
		if err := writer.WriteField("seasonalPrice", strconv.FormatFloat(*createReq.SeasonalPrice, 'f', -1, 64)); err != nil {
			return err
		}
	}

	amenities, err := json.Marshal(createReq.Amenities)
	if err != nil {
		return err
	}
	if err := writer.WriteField("amenities", string(amenities)); err != nil {
		return err
	}

	roomNumbers, err := json.Marshal(createReq.RoomNumbers)
	if err != nil {
		return err
	}
	if err := writer.WriteField("roomNumbers", string(roomNumbers)); err != nil {
		return err
	}

	for _, photo := range createReq.Photos {
		part, err := writer.CreateFormFile("photos", photo.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, photo.Reader); err != nil {
			return err
		}
	}

	return nil
}
