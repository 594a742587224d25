package activate_shift

import (
	"context"

	activateShift "github.com/agendafacil/AF-SchedulingService/internal/usecase/activate_shift"
)

type ActivateShiftUseCase interface {
	Execute(ctx context.Context, req *activateShift.Request) (*activateShift.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
