package list_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/internal/service/appointments/models"
)

// parseQuery собирает запрос сервиса из query параметров
// Поддерживаются фильтры professionalId, startDate, endDate и
// includeTerminal
func parseQuery(establishmentID int64, query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		EstablishmentID: establishmentID,
	}

	if raw := query.Get("professionalId"); raw != "" {
		professionalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("includeTerminal"); raw != "" {
		includeTerminal, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeTerminal = includeTerminal
	}

	return req, nil
}
