package get_bookable_times

import (
	"context"
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID int64) ([]*domain.Shift, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetEstablishment(ctx context.Context, establishmentID int64) (*catalog.Establishment, error)
	GetService(ctx context.Context, establishmentID, serviceID int64) (*catalog.Service, error)
}

// SlotGeneratorClient интерфейс клиента внешнего генератора кандидатных времён
type SlotGeneratorClient interface {
	GetCandidateTimes(ctx context.Context, establishmentID int64, professionalID *int64, serviceID int64, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
