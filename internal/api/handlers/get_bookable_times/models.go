package get_bookable_times

import (
	"net/url"
	"strconv"
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	getBookableTimes "github.com/agendafacil/AF-SchedulingService/internal/usecase/get_bookable_times"
)

// BookableTimesResponse HTTP response model
type BookableTimesResponse struct {
	EstablishmentID int64    `json:"establishmentId"`
	ProfessionalID  *int64   `json:"professionalId,omitempty"`
	ServiceID       int64    `json:"serviceId"`
	Date            string   `json:"date"`  // "2026-03-10"
	Times           []string `json:"times"` // ["08:00", "08:30", ...]
}

// parseQuery собирает запрос use case из query параметров
// serviceId и date обязательны, professionalId опционален
func parseQuery(establishmentID int64, query url.Values) (*getBookableTimes.Request, error) {
	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &getBookableTimes.Request{
		EstablishmentID: establishmentID,
		ServiceID:       serviceID,
		Date:            date,
	}

	if raw := query.Get("professionalId"); raw != "" {
		professionalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookableTimes.Response) *BookableTimesResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	return &BookableTimesResponse{
		EstablishmentID: resp.EstablishmentID,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		Times:           times,
	}
}
