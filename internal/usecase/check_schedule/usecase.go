package check_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/internal/service/availability"
	"github.com/m04kA/CMS-SchedulingService/internal/service/conflicts"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

// UseCase use case консультативной проверки интервала расписания
type UseCase struct {
	bookingRepo BookingRepository
	unavailRepo UnavailabilityRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unavailRepo UnavailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		unavailRepo: unavailRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute проверяет интервал против окон недоступности и активных бронирований
// исполнителя. Обе выборки читаются в одной read-only транзакции, чтобы ответ
// был согласованным снимком расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSchedule: date=%s, time=%s-%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSchedule: validation failed: %v", err)
		return nil, err
	}

	// Кандидат для проверки; статус pending делает его активным для детектора
	candidate := &domain.Booking{
		StaffID:   req.StaffID,
		TeamID:    req.TeamID,
		Date:      req.Date,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.StatusPending,
	}
	if req.ExcludeBookingID != nil {
		candidate.ID = *req.ExcludeBookingID
	}

	resp := &Response{Available: true}

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		startDate := candidate.Date
		endDate := candidate.LastDate()

		// 1. Окна недоступности исполнителя
		windows, err := uc.unavailRepo.GetForAssigneeInRange(txCtx, req.StaffID, req.TeamID, startDate, endDate)
		if err != nil {
			uc.logger.Error("CheckSchedule: failed to get unavailability windows: %v", err)
			return fmt.Errorf("%w: failed to get unavailability windows: %v", ErrInternal, err)
		}

		if err := availability.Check(candidate, windows); err != nil {
			resp.Available = false
			resp.UnavailableReason = ptr.Ptr(err.Error())
		}

		// 2. Пересечения с активными бронированиями
		existing, err := uc.bookingRepo.GetByAssigneeWithFilter(txCtx, domain.AssigneeBookingsFilter{
			StaffID:   req.StaffID,
			TeamID:    req.TeamID,
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		if err != nil {
			uc.logger.Error("CheckSchedule: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		if conflictIDs := conflicts.FindForCandidate(candidate, existing); len(conflictIDs) > 0 {
			resp.Available = false
			resp.ConflictBookingIDs = conflictIDs
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckSchedule: available=%t, conflicts=%d", resp.Available, len(resp.ConflictBookingIDs))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if (req.StaffID == nil) == (req.TeamID == nil) {
		return fmt.Errorf("%w: exactly one of staffID/teamID must be set", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.EndDate != nil && req.EndDate.Before(req.Date) {
		return fmt.Errorf("%w: endDate must not be before date", ErrInvalidInput)
	}

	// EndDate, совпадающий с Date, - однодневный интервал с обычной
	// проверкой порядка времени
	if !isMultiDay(req.Date, req.EndDate) && !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}

// isMultiDay возвращает true, если интервал занимает больше одного календарного дня
func isMultiDay(date time.Time, endDate *time.Time) bool {
	if endDate == nil {
		return false
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := endDate.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}
