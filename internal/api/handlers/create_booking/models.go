package create_booking

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/CMS-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID int64   `json:"customerId"`
	StaffID    *int64  `json:"staffId,omitempty"`
	TeamID     *int64  `json:"teamId,omitempty"`
	Date       string  `json:"date"`              // "2025-10-15"
	EndDate    *string `json:"endDate,omitempty"` // для многодневных работ
	StartTime  string  `json:"startTime"`         // "10:00"
	EndTime    string  `json:"endTime"`

	PriceMode   string   `json:"priceMode"` // package, override или custom
	PackageID   *int64   `json:"packageId,omitempty"`
	AreaSqm     *int     `json:"areaSqm,omitempty"`
	Frequency   *string  `json:"frequency,omitempty"`
	CustomPrice *float64 `json:"customPrice,omitempty"`
	JobName     *string  `json:"jobName,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	StaffID    *int64  `json:"staffId,omitempty"`
	TeamID     *int64  `json:"teamId,omitempty"`
	Date       string  `json:"date"`
	EndDate    *string `json:"endDate,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`

	PriceMode     string  `json:"priceMode"`
	ResolvedPrice float64 `json:"resolvedPrice"`
	PackageID     *int64  `json:"packageId,omitempty"`
	PackageName   *string `json:"packageName,omitempty"`
	JobName       *string `json:"jobName,omitempty"`

	RecurringGroupID *string `json:"recurringGroupId,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:  r.CustomerID,
		StaffID:     r.StaffID,
		TeamID:      r.TeamID,
		Date:        date,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
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
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:               resp.ID,
		CustomerID:       resp.CustomerID,
		StaffID:          resp.StaffID,
		TeamID:           resp.TeamID,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		Status:           resp.Status,
		PriceMode:        resp.PriceMode,
		ResolvedPrice:    resp.ResolvedPrice,
		PackageID:        resp.PackageID,
		PackageName:      resp.PackageName,
		JobName:          resp.JobName,
		RecurringGroupID: resp.RecurringGroupID,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.EndDate != nil {
		endDate := resp.EndDate.Format(domain.DateFormat)
		out.EndDate = &endDate
	}

	return out
}
