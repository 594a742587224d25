package slotgen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// Client клиент внешнего генератора кандидатных времён.
// Генератор превращает длительность услуги и календарный день в сырой
// список времён "HH:MM"; его реализация вне этого сервиса - мы только
// потребляем список и прогоняем через фильтры доступности.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента генератора
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCandidateTimes получает кандидатные времена для комбинации
// (заведение, мастер, услуга, дата)
func (c *Client) GetCandidateTimes(
	ctx context.Context,
	establishmentID int64,
	professionalID *int64,
	serviceID int64,
	date time.Time,
) ([]types.TimeString, error) {
	query := url.Values{}
	query.Set("serviceId", strconv.FormatInt(serviceID, 10))
	query.Set("date", date.Format(domain.DateFormat))
	if professionalID != nil {
		query.Set("professionalId", strconv.FormatInt(*professionalID, 10))
	}

	reqURL := fmt.Sprintf("%s/internal/establishments/%d/candidate-times?%s",
		c.baseURL, establishmentID, query.Encode())

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
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload candidateTimesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	times := make([]types.TimeString, 0, len(payload.Times))
	for _, raw := range payload.Times {
		ts, err := types.NewTimeStringFromString(raw)
		if err != nil {
			// Один битый элемент не должен рушить весь список
			c.log.Warn("slotgen: skipping malformed candidate time %q: %v", raw, err)
			continue
		}
		times = append(times, ts)
	}

	return times, nil
}
