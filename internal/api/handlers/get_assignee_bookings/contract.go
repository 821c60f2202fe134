package get_assignee_bookings

import (
	"context"

	"github.com/m04kA/CMS-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	GetAssigneeBookings(ctx context.Context, req *models.GetAssigneeBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
