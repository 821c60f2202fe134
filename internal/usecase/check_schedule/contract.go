package check_schedule

import (
	"context"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByAssigneeWithFilter(ctx context.Context, filter domain.AssigneeBookingsFilter) ([]*domain.Booking, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	GetForAssigneeInRange(ctx context.Context, staffID, teamID *int64, start, end time.Time) ([]*domain.UnavailabilityWindow, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
