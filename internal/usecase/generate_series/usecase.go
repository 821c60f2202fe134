package generate_series

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

// UseCase use case для генерации повторяющейся серии бронирований
type UseCase struct {
	bookingCreator BookingCreator
	groupIDGen     GroupIDGenerator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingCreator BookingCreator, logger Logger) *UseCase {
	return &UseCase{
		bookingCreator: bookingCreator,
		groupIDGen:     &UUIDGenerator{},
		logger:         logger,
	}
}

// Execute раскрывает правило повторения в список дат и создаёт бронирование
// на каждую из них. Каждая дата проходит полный конвейер создания независимо,
// в собственной транзакции: конфликт на одной дате не отменяет остальные.
// Ошибка раскрытия правила (в том числе превышение лимита дат) отменяет всю серию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSeries: customer=%d, pattern=%s, period=%s to %s",
		req.CustomerID, req.Pattern,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Собираем и валидируем правило повторения
	rule, err := uc.buildRule(req)
	if err != nil {
		uc.logger.Warn("GenerateSeries: invalid recurrence rule: %v", err)
		return nil, err
	}

	// 2. Раскрываем правило в список дат
	// Слишком длинная серия - ошибка всего запроса, а не частичный успех
	dates, err := rule.ExpandDates()
	if err != nil {
		if errors.Is(err, domain.ErrSeriesTooLarge) {
			uc.logger.Warn("GenerateSeries: series too large: %v", err)
			return nil, fmt.Errorf("%w: at most %d dates per series", ErrSeriesTooLarge, domain.MaxSeriesDates)
		}
		uc.logger.Warn("GenerateSeries: expansion failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
	}

	if len(dates) == 0 {
		uc.logger.Warn("GenerateSeries: rule expands to no dates")
		return nil, fmt.Errorf("%w: rule expands to no dates", ErrInvalidRecurrence)
	}

	groupID := uc.groupIDGen.NewGroupID()
	uc.logger.Info("GenerateSeries: expanding to %d dates, group=%s", len(dates), groupID)

	// 3. Создаём бронирования по одному, собирая частичные ошибки
	resp := &Response{
		GroupID: groupID,
		Created: make([]*create_booking.Response, 0, len(dates)),
		Errors:  make([]DateError, 0),
	}

	for _, date := range dates {
		created, err := uc.bookingCreator.Execute(ctx, &create_booking.Request{
			CustomerID:       req.CustomerID,
			StaffID:          req.StaffID,
			TeamID:           req.TeamID,
			Date:             date,
			StartTime:        req.StartTime,
			EndTime:          req.EndTime,
			PriceMode:        req.PriceMode,
			PackageID:        req.PackageID,
			AreaSqm:          req.AreaSqm,
			Frequency:        req.Frequency,
			CustomPrice:      req.CustomPrice,
			JobName:          req.JobName,
			Notes:            req.Notes,
			RecurringGroupID: ptr.Ptr(groupID),
		})
		if err != nil {
			uc.logger.Warn("GenerateSeries: date %s skipped: %v", date.Format(domain.DateFormat), err)
			resp.Errors = append(resp.Errors, DateError{
				Date:  date.Format(domain.DateFormat),
				Error: err.Error(),
			})
			continue
		}

		resp.Created = append(resp.Created, created)
	}

	uc.logger.Info("GenerateSeries: group=%s created %d of %d bookings",
		groupID, len(resp.Created), len(dates))
	return resp, nil
}

// buildRule собирает доменное правило повторения из запроса
func (uc *UseCase) buildRule(req *Request) (*domain.RecurrenceRule, error) {
	pattern, err := domain.ParseRecurrencePattern(req.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, req.Pattern)
	}

	weekdays, err := parseWeekdays(req.Weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
	}

	rule := &domain.RecurrenceRule{
		Pattern:   pattern,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Weekdays:  weekdays,
	}

	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
	}

	return rule, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// parseWeekdays конвертирует названия дней недели в time.Weekday
func parseWeekdays(names []string) ([]time.Weekday, error) {
	if len(names) == 0 {
		return nil, nil
	}

	weekdays := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		weekdays = append(weekdays, wd)
	}

	return weekdays, nil
}

// UUIDGenerator генератор ID серии на основе UUID v4
type UUIDGenerator struct{}

// NewGroupID возвращает новый ID повторяющейся серии
func (g *UUIDGenerator) NewGroupID() string {
	return uuid.NewString()
}
