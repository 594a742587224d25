package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
// Date и StartTime заданы в отображаемой конвенции - так их видит
// клиент в списке доступного времени
type Request struct {
	EstablishmentID int64            // ID заведения
	ProfessionalID  *int64           // ID мастера (nil - бронь уровня заведения)
	ClientID        int64            // ID клиента
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала, например "09:00"
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	Reference       uuid.UUID        // Публичный идентификатор записи
	EstablishmentID int64            // ID заведения
	ProfessionalID  *int64           // ID мастера
	ClientID        int64            // ID клиента
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи (отображаемая конвенция)
	StartTime       types.TimeString // Время начала (отображаемая конвенция)
	DurationMinutes int              // Длительность, денормализована из услуги
	Status          string           // Статус записи

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice *float64

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
