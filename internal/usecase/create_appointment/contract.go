package create_appointment

import (
	"context"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// ListWithFilter получает записи; внутри транзакции с заданным
	// периодом репозиторий блокирует строки (FOR UPDATE)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID int64) ([]*domain.Shift, error)
}

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetEstablishment(ctx context.Context, establishmentID int64) (*catalog.Establishment, error)
	GetService(ctx context.Context, establishmentID, serviceID int64) (*catalog.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
