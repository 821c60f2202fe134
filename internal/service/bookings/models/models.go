package models

import (
	"errors"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetAssigneeBookingsRequest запрос на получение бронирований исполнителя
// Ровно один из StaffID/TeamID должен быть задан
type GetAssigneeBookingsRequest struct {
	StaffID         *int64     `json:"staffId,omitempty"`
	TeamID          *int64     `json:"teamId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
	WithConflicts   bool       `json:"withConflicts,omitempty"`   // Рассчитать карту конфликтов по выборке
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAssigneeBookingsRequest) ToDomainFilter() (domain.AssigneeBookingsFilter, error) {
	filter := domain.AssigneeBookingsFilter{
		StaffID:         r.StaffID,
		TeamID:          r.TeamID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	StaffID    *int64  `json:"staffId,omitempty"`
	TeamID     *int64  `json:"teamId,omitempty"`
	Date       string  `json:"date"`              // "2025-10-15"
	EndDate    *string `json:"endDate,omitempty"` // только для многодневных работ
	StartTime  string  `json:"startTime"`         // "10:00"
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`

	// Ценообразование
	PriceMode     string   `json:"priceMode"`
	PackageID     *int64   `json:"packageId,omitempty"`
	AreaSqm       *int     `json:"areaSqm,omitempty"`
	Frequency     *string  `json:"frequency,omitempty"`
	CustomPrice   *float64 `json:"customPrice,omitempty"`
	JobName       *string  `json:"jobName,omitempty"`
	ResolvedPrice float64  `json:"resolvedPrice"`

	// Денормализованные данные
	PackageName      *string `json:"packageName,omitempty"`
	RecurringGroupID *string `json:"recurringGroupId,omitempty"`
	Notes            *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
// Conflicts присутствует только когда запрошена карта конфликтов:
// ключ - ID бронирования, значение - ID пересекающихся с ним бронирований
type BookingListResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Conflicts map[int64][]int64 `json:"conflicts,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		StaffID:            b.StaffID,
		TeamID:             b.TeamID,
		Date:               b.Date.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		PriceMode:          string(b.PriceMode),
		PackageID:          b.PackageID,
		AreaSqm:            b.AreaSqm,
		Frequency:          b.Frequency,
		CustomPrice:        b.CustomPrice,
		JobName:            b.JobName,
		ResolvedPrice:      b.ResolvedPrice,
		PackageName:        b.PackageName,
		RecurringGroupID:   b.RecurringGroupID,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.EndDate != nil {
		endDateStr := b.EndDate.Format(domain.DateFormat)
		resp.EndDate = &endDateStr
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, err := domain.ParseBookingStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}
