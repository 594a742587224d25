package list_shifts

import (
	"net/url"
	"strconv"

	"github.com/agendafacil/AF-SchedulingService/internal/service/shifts/models"
)

// parseQuery собирает запрос сервиса из query параметров
// Поддерживаются фильтры professionalId и status
func parseQuery(establishmentID int64, query url.Values) (*models.ListShiftsRequest, error) {
	req := &models.ListShiftsRequest{
		EstablishmentID: establishmentID,
	}

	if raw := query.Get("professionalId"); raw != "" {
		professionalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	return req, nil
}
