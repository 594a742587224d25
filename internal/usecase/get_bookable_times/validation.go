package get_bookable_times

import (
	"fmt"
	"time"

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

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// dayStart обнуляет время, оставляя календарный день
func dayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// serverDayWindow возвращает границы отображаемого календарного дня
// в серверной конвенции: [from, to), to исключительно
func serverDayWindow(norm *tznorm.Normalizer, displayDay time.Time) (time.Time, time.Time) {
	from := norm.ToServer(displayDay)
	return from, from.Add(24 * time.Hour)
}
