package activate_shift

import (
	"context"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	// ListByEstablishment получает все смены заведения; внутри
	// транзакции репозиторий блокирует строки (FOR UPDATE)
	ListByEstablishment(ctx context.Context, establishmentID int64) ([]*domain.Shift, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ShiftStatus) error
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
