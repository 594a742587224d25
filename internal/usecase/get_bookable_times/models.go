package get_bookable_times

import (
	"time"

	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных времён
type Request struct {
	EstablishmentID int64     // ID заведения
	ProfessionalID  *int64    // ID мастера (nil - бронь уровня заведения)
	ServiceID       int64     // ID услуги
	Date            time.Time // Календарный день в отображаемой конвенции (без времени)
}

// Response модель ответа со списком доступных времён
// Times отсортированы по времени суток и дедуплицированы
type Response struct {
	EstablishmentID int64              // ID заведения
	ProfessionalID  *int64             // ID мастера
	ServiceID       int64              // ID услуги
	Date            time.Time          // Дата, на которую запрашивались времена
	Times           []types.TimeString // Доступные времена
}
