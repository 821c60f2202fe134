package generate_series

import (
	"time"

	createBookingHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/create_booking"
	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	generateSeries "github.com/m04kA/CMS-SchedulingService/internal/usecase/generate_series"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// GenerateSeriesRequest HTTP request model
type GenerateSeriesRequest struct {
	CustomerID int64  `json:"customerId"`
	StaffID    *int64 `json:"staffId,omitempty"`
	TeamID     *int64 `json:"teamId,omitempty"`
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`

	Recurrence RecurrenceRequest `json:"recurrence"`

	PriceMode   string   `json:"priceMode"`
	PackageID   *int64   `json:"packageId,omitempty"`
	AreaSqm     *int     `json:"areaSqm,omitempty"`
	Frequency   *string  `json:"frequency,omitempty"`
	CustomPrice *float64 `json:"customPrice,omitempty"`
	JobName     *string  `json:"jobName,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// RecurrenceRequest правило повторения серии
type RecurrenceRequest struct {
	Pattern   string   `json:"pattern"`   // daily, weekly, biweekly или monthly
	StartDate string   `json:"startDate"` // "2025-10-01"
	EndDate   string   `json:"endDate"`   // включительно
	Weekdays  []string `json:"weekdays,omitempty"`
}

// SeriesResponse HTTP response model
type SeriesResponse struct {
	GroupID string                                  `json:"groupId"`
	Created []*createBookingHandler.BookingResponse `json:"created"`
	Errors  []generateSeries.DateError              `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSeriesRequest) ToUseCaseRequest() (*generateSeries.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.Recurrence.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.Recurrence.EndDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &generateSeries.Request{
		CustomerID:  r.CustomerID,
		StaffID:     r.StaffID,
		TeamID:      r.TeamID,
		StartTime:   startTime,
		EndTime:     endTime,
		Pattern:     r.Recurrence.Pattern,
		StartDate:   startDate,
		EndDate:     endDate,
		Weekdays:    r.Recurrence.Weekdays,
		PriceMode:   r.PriceMode,
		PackageID:   r.PackageID,
		AreaSqm:     r.AreaSqm,
		Frequency:   r.Frequency,
		CustomPrice: r.CustomPrice,
		JobName:     r.JobName,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSeries.Response) *SeriesResponse {
	out := &SeriesResponse{
		GroupID: resp.GroupID,
		Created: make([]*createBookingHandler.BookingResponse, 0, len(resp.Created)),
		Errors:  resp.Errors,
	}

	for _, created := range resp.Created {
		out.Created = append(out.Created, createBookingHandler.FromUseCaseResponse(created))
	}

	return out
}
