package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/CMS-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/CMS-SchedulingService/internal/service/conflicts"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetAssigneeBookings получает расписание исполнителя с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований.
// При WithConflicts дополнительно строит карту пересечений по выборке -
// так диспетчер видит двойные бронирования, попавшие в базу до включения проверок.
//
// Примеры использования:
// - Расписание сотрудника: GetAssigneeBookings(ctx, &GetAssigneeBookingsRequest{StaffID: &id})
// - Расписание бригады за период: указать TeamID, StartDate и EndDate
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetAssigneeBookings(ctx context.Context, req *models.GetAssigneeBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetAssigneeBookings: fetching bookings"
	if req.StaffID != nil {
		logMsg += fmt.Sprintf(" for staff=%d", *req.StaffID)
	}
	if req.TeamID != nil {
		logMsg += fmt.Sprintf(" for team=%d", *req.TeamID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	if (req.StaffID == nil) == (req.TeamID == nil) {
		s.logger.Warn("GetAssigneeBookings: exactly one of staffId/teamId must be set")
		return nil, fmt.Errorf("%w: exactly one of staffId/teamId must be set", ErrInvalidInput)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAssigneeBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByAssigneeWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAssigneeBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAssigneeBookings - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBookingList(bookings)

	// Карта конфликтов по запросу
	if req.WithConflicts {
		set := conflicts.Build(bookings)
		if set.HasConflicts() {
			s.logger.Warn("GetAssigneeBookings: %d bookings have overlaps in selection", len(set))
			resp.Conflicts = set
		}
	}

	s.logger.Info("GetAssigneeBookings: successfully fetched %d bookings", len(bookings))
	return resp, nil
}

// GetRecurringGroup получает все бронирования одной повторяющейся серии
func (s *Service) GetRecurringGroup(ctx context.Context, groupID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetRecurringGroup: fetching bookings for group=%s", groupID)

	bookings, err := s.bookingRepo.GetByRecurringGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("GetRecurringGroup: repository error for group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: GetRecurringGroup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRecurringGroup: successfully fetched %d bookings for group=%s", len(bookings), groupID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена возможна только из нетерминального статуса
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus переводит бронирование в новый статус
// Переход валидируется машиной состояний: из терминальных статусов выхода нет,
// а отмена через этот метод запрещена - для неё есть Cancel с причиной
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested through status update for booking id=%d", bookingID)
		return fmt.Errorf("%w: use the cancel endpoint to cancel a booking", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем допустимость перехода
	if _, err := domain.Transition(booking.Status, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d", booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}
