package deactivate_shift

import (
	"context"

	"github.com/agendafacil/AF-SchedulingService/internal/service/shifts/models"
)

type ShiftService interface {
	Deactivate(ctx context.Context, id int64) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
