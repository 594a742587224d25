package catalog

// Establishment заведение из каталога
type Establishment struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ProfessionalIDs []int64 `json:"professionalIds"`
}

// Service услуга заведения
// DurationMinutes денормализуется в запись при её создании и после
// этого не пересчитывается
type Service struct {
	ID              int64    `json:"id"`
	EstablishmentID int64    `json:"establishmentId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// HasProfessional проверяет, что мастер числится в заведении
func (e *Establishment) HasProfessional(professionalID int64) bool {
	for _, id := range e.ProfessionalIDs {
		if id == professionalID {
			return true
		}
	}
	return false
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
