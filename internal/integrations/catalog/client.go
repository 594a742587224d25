package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент сервиса каталога (заведения, мастера, услуги).
// CRUD каталога живёт в соседнем сервисе; здесь только чтение,
// необходимое движку доступности.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEstablishment получает заведение по ID
func (c *Client) GetEstablishment(ctx context.Context, establishmentID int64) (*Establishment, error) {
	url := fmt.Sprintf("%s/internal/establishments/%d", c.baseURL, establishmentID)

	var establishment Establishment
	if err := c.getJSON(ctx, url, &establishment, ErrEstablishmentNotFound); err != nil {
		return nil, err
	}
	return &establishment, nil
}

// GetService получает услугу заведения по ID
func (c *Client) GetService(ctx context.Context, establishmentID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/establishments/%d/services/%d", c.baseURL, establishmentID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &service, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
