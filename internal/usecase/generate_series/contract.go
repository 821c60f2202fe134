package generate_series

import (
	"context"

	"github.com/m04kA/CMS-SchedulingService/internal/usecase/create_booking"
)

// BookingCreator интерфейс создания одиночного бронирования
// Реализуется usecase создания: каждая дата серии проходит полный
// конвейер проверок (цена, доступность, конфликты) независимо
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// GroupIDGenerator интерфейс генерации ID повторяющейся серии
type GroupIDGenerator interface {
	NewGroupID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
