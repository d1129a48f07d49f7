package sitestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
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

// Client клиент хранилища контента сайта (галерея, сообщения обратной связи)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища контента сайта.
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

// ListGallery получает список изображений галереи
func (c *Client) ListGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	var payloads []galleryImagePayload
	if err := c.getJSON(ctx, "/api/gallery", &payloads); err != nil {
		return nil, err
	}

	result := make([]domain.GalleryImage, len(payloads))
	for i := range payloads {
		result[i] = payloads[i].toDomain()
	}
	return result, nil
}

// UploadGalleryImage загружает изображение multipart-формой (title, image)
func (c *Client) UploadGalleryImage(ctx context.Context, uploadReq *UploadImageRequest) (*domain.GalleryImage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("title", uploadReq.Title); err != nil {
		return nil, fmt.Errorf("%w: failed to build multipart form: %v", ErrInternal, err)
	}
	part, err := writer.CreateFormFile("image", uploadReq.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build multipart form: %v", ErrInternal, err)
	}
	if _, err := io.Copy(part, uploadReq.Reader); err != nil {
		return nil, fmt.Errorf("%w: failed to write image data: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize multipart form: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/api/gallery", c.baseURL)
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
	default:
		return nil, storeclient.Reject(ErrStoreRejected, resp)
	}

	var payload galleryImagePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	image := payload.toDomain()
	return &image, nil
}

// DeleteGalleryImage удаляет изображение галереи по идентификатору
func (c *Client) DeleteGalleryImage(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/api/gallery/%s", url.PathEscape(id)), ErrImageNotFound)
}

// ListContactMessages получает список сообщений обратной связи
func (c *Client) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var payloads []contactMessagePayload
	if err := c.getJSON(ctx, "/api/contact-messages", &payloads); err != nil {
		return nil, err
	}

	result := make([]domain.ContactMessage, len(payloads))
	for i := range payloads {
		result[i] = payloads[i].toDomain()
	}
	return result, nil
}

// DeleteContactMessage удаляет сообщение обратной связи по идентификатору
func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/api/contact-messages/%s", url.PathEscape(id)), ErrMessageNotFound)
}

// getJSON выполняет GET и разбирает JSON-ответ в dst
func (c *Client) getJSON(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return storeclient.Reject(ErrStoreRejected, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// delete выполняет DELETE; notFound — сентинел для статуса 404
func (c *Client) delete(ctx context.Context, path string, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
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
		return notFound
	default:
		return storeclient.Reject(ErrStoreRejected, resp)
	}
}
