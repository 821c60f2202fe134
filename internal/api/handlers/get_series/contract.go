package get_series

import (
	"context"

	"github.com/m04kA/CMS-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	GetRecurringGroup(ctx context.Context, groupID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
