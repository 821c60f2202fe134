package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/CMS-SchedulingService/internal/service/availability"
	"github.com/m04kA/CMS-SchedulingService/internal/service/conflicts"
	"github.com/m04kA/CMS-SchedulingService/internal/service/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	unavailRepo   UnavailabilityRepository
	priceResolver PriceResolver
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unavailRepo UnavailabilityRepository,
	priceResolver PriceResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		unavailRepo:   unavailRepo,
		priceResolver: priceResolver,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Цена рассчитывается до транзакции (внешний HTTP вызов каталога),
// проверки доступности и конфликтов - внутри сериализуемой транзакции
// с блокировкой строк исполнителя (FOR UPDATE)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, date=%s, time=%s-%s, mode=%s",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.PriceMode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Рассчитываем цену (вне транзакции - внешний вызов каталога)
	mode, _ := domain.ParsePriceMode(req.PriceMode)
	resolution, err := uc.priceResolver.Resolve(ctx, &pricing.Request{
		Mode:        mode,
		PackageID:   req.PackageID,
		AreaSqm:     req.AreaSqm,
		Frequency:   req.Frequency,
		CustomPrice: req.CustomPrice,
		JobName:     req.JobName,
	})
	if err != nil {
		return nil, uc.mapPricingError(err)
	}

	uc.logger.Info("CreateBooking: price resolved, mode=%s, price=%.2f", mode, resolution.Price)

	// 4. Собираем доменную модель и проверяем её инварианты
	booking := &domain.Booking{
		CustomerID:       req.CustomerID,
		StaffID:          req.StaffID,
		TeamID:           req.TeamID,
		Date:             req.Date,
		EndDate:          req.EndDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		PriceMode:        mode,
		PackageID:        resolution.PackageID,
		AreaSqm:          req.AreaSqm,
		Frequency:        req.Frequency,
		CustomPrice:      req.CustomPrice,
		JobName:          resolution.JobName,
		ResolvedPrice:    resolution.Price,
		Status:           domain.StatusPending,
		RecurringGroupID: req.RecurringGroupID,
		PackageName:      resolution.PackageName,
		Notes:            req.Notes,
	}

	if err := booking.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: domain validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		startDate := booking.Date
		endDate := booking.LastDate()

		// 5.1. Получаем окна недоступности исполнителя на период работ
		windows, err := uc.unavailRepo.GetForAssigneeInRange(txCtx, booking.StaffID, booking.TeamID, startDate, endDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get unavailability windows: %v", err)
			return fmt.Errorf("%w: failed to get unavailability windows: %v", ErrInternal, err)
		}

		// 5.2. Проверяем, что исполнитель доступен
		if err := availability.Check(booking, windows); err != nil {
			uc.logger.Warn("CreateBooking: assignee unavailable: %v", err)
			return fmt.Errorf("%w: %v", ErrAssigneeUnavailable, err)
		}

		// 5.3. Получаем активные бронирования исполнителя с блокировкой (FOR UPDATE)
		filter := domain.AssigneeBookingsFilter{
			StaffID:       booking.StaffID,
			TeamID:        booking.TeamID,
			StartDate:     &startDate,
			EndDate:       &endDate,
			LockForUpdate: true,
		}

		existing, err := uc.bookingRepo.GetByAssigneeWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 5.4. Проверяем пересечения с существующими бронированиями
		if conflictIDs := conflicts.FindForCandidate(booking, existing); len(conflictIDs) > 0 {
			uc.logger.Warn("CreateBooking: schedule conflict with bookings %v", conflictIDs)
			return fmt.Errorf("%w: overlaps with bookings %v", ErrScheduleConflict, conflictIDs)
		}

		// 5.5. Сохраняем бронирование
		// Уникальный индекс в БД - последний рубеж против гонки check-then-write
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken at commit: %v", err)
				return fmt.Errorf("%w: slot already taken", ErrScheduleConflict)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		CustomerID:       result.CustomerID,
		StaffID:          result.StaffID,
		TeamID:           result.TeamID,
		Date:             result.Date,
		EndDate:          result.EndDate,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		Status:           string(result.Status),
		PriceMode:        string(result.PriceMode),
		ResolvedPrice:    result.ResolvedPrice,
		PackageID:        result.PackageID,
		PackageName:      result.PackageName,
		JobName:          result.JobName,
		RecurringGroupID: result.RecurringGroupID,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// mapPricingError транслирует ошибки сервиса цен в ошибки usecase
func (uc *UseCase) mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrMissingPackage):
		uc.logger.Warn("CreateBooking: package missing: %v", err)
		return fmt.Errorf("%w: %v", ErrMissingPackage, err)
	case errors.Is(err, pricing.ErrInvalidPrice):
		uc.logger.Warn("CreateBooking: invalid price: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	case errors.Is(err, pricing.ErrMissingJobName):
		uc.logger.Warn("CreateBooking: job name missing: %v", err)
		return fmt.Errorf("%w: %v", ErrMissingJobName, err)
	case errors.Is(err, pricing.ErrNoMatchingTier):
		uc.logger.Warn("CreateBooking: no matching tier: %v", err)
		return fmt.Errorf("%w: %v", ErrNoMatchingTier, err)
	case errors.Is(err, pricing.ErrInvalidMode):
		uc.logger.Warn("CreateBooking: invalid price mode: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateBooking: price resolution failed: %v", err)
		return fmt.Errorf("%w: price resolution failed: %v", ErrInternal, err)
	}
}
