package bookings

import (
	"context"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByAssigneeWithFilter(ctx context.Context, filter domain.AssigneeBookingsFilter) ([]*domain.Booking, error)
	GetByRecurringGroup(ctx context.Context, groupID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
