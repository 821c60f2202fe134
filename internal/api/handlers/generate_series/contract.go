package generate_series

import (
	"context"

	generateSeries "github.com/m04kA/CMS-SchedulingService/internal/usecase/generate_series"
)

type GenerateSeriesUseCase interface {
	Execute(ctx context.Context, req *generateSeries.Request) (*generateSeries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
