package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/internal/service/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByAssigneeWithFilter(ctx context.Context, filter domain.AssigneeBookingsFilter) ([]*domain.Booking, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	GetForAssigneeInRange(ctx context.Context, staffID, teamID *int64, start, end time.Time) ([]*domain.UnavailabilityWindow, error)
}

// PriceResolver интерфейс сервиса расчёта цены
type PriceResolver interface {
	Resolve(ctx context.Context, req *pricing.Request) (*pricing.Resolution, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
