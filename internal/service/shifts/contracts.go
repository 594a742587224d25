package shifts

import (
	"context"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	ListByEstablishment(ctx context.Context, establishmentID int64) ([]*domain.Shift, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ShiftStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
