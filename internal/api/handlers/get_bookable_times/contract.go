package get_bookable_times

import (
	"context"

	getBookableTimes "github.com/agendafacil/AF-SchedulingService/internal/usecase/get_bookable_times"
)

type GetBookableTimesUseCase interface {
	Execute(ctx context.Context, req *getBookableTimes.Request) (*getBookableTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
