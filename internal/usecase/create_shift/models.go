package create_shift

import (
	"time"

	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// Request модель запроса на создание смены
// ProfessionalID == nil означает смену уровня заведения
type Request struct {
	EstablishmentID int64            // ID заведения
	ProfessionalID  *int64           // ID мастера (опционально)
	Name            string           // Название смены
	Weekdays        []int            // Дни недели 0-6 (0 = воскресенье)
	StartTime       types.TimeString // Время начала, например "08:00"
	EndTime         types.TimeString // Время конца, например "12:00"
	Inactive        bool             // Создать сразу неактивной (по умолчанию смена активна)
}

// Response модель ответа создания смены
// При конфликте дней недели Allowed=false, Shift не создаётся
type Response struct {
	Allowed                 bool       // Создана ли смена
	ConflictingWeekdays     []int      // Конфликтующие дни недели при отказе
	ConflictingWeekdayNames []string   // Имена конфликтующих дней
	Shift                   *ShiftData // Созданная смена (nil при отказе)
}

// ShiftData данные созданной смены
type ShiftData struct {
	ID              int64
	EstablishmentID int64
	ProfessionalID  *int64
	Name            string
	Weekdays        []int
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
