package create_appointment

import (
	"fmt"
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EstablishmentID <= 0 {
		return fmt.Errorf("%w: establishmentID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// dayStart обнуляет время, оставляя календарный день
func dayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// displayInstant собирает момент начала записи в отображаемой конвенции
// из календарного дня и времени вида "HH:MM"
func displayInstant(displayDay time.Time, start types.TimeString) (time.Time, error) {
	parsed, err := time.Parse(domain.TimeFormat, start.String())
	if err != nil {
		return time.Time{}, err
	}
	return displayDay.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute), nil
}

// serverDayWindow возвращает границы отображаемого календарного дня
// в серверной конвенции: [from, to), to исключительно
func serverDayWindow(norm *tznorm.Normalizer, displayDay time.Time) (time.Time, time.Time) {
	from := norm.ToServer(displayDay)
	return from, from.Add(24 * time.Hour)
}
