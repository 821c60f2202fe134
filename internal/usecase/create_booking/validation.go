package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	// Ровно один исполнитель: сотрудник или бригада
	if (req.StaffID == nil) == (req.TeamID == nil) {
		return fmt.Errorf("%w: exactly one of staffID/teamID must be set", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.TeamID != nil && *req.TeamID <= 0 {
		return fmt.Errorf("%w: teamID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.EndDate != nil && req.EndDate.Before(req.Date) {
		return fmt.Errorf("%w: endDate must not be before date", ErrInvalidInput)
	}

	// В пределах одного дня конец должен быть строго позже начала;
	// для многодневных работ допустим переход через полночь.
	// EndDate, совпадающий с Date, считается одним днём
	if !isMultiDay(req.Date, req.EndDate) && !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if _, err := domain.ParsePriceMode(req.PriceMode); err != nil {
		return fmt.Errorf("%w: unknown price mode %q", ErrInvalidInput, req.PriceMode)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.JobName != nil && len(*req.JobName) > domain.MaxJobNameLength {
		return fmt.Errorf("%w: jobName exceeds %d characters", ErrInvalidInput, domain.MaxJobNameLength)
	}

	return nil
}

// isMultiDay возвращает true, если работы занимают больше одного календарного дня
func isMultiDay(date time.Time, endDate *time.Time) bool {
	if endDate == nil {
		return false
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := endDate.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return nil
}
