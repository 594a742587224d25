package create_shift

import (
	"context"

	createShift "github.com/agendafacil/AF-SchedulingService/internal/usecase/create_shift"
)

type CreateShiftUseCase interface {
	Execute(ctx context.Context, req *createShift.Request) (*createShift.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
