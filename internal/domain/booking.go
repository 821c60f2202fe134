package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

var (
	// ErrInvalidAssignee возвращается, когда назначен и сотрудник, и бригада (или никто)
	ErrInvalidAssignee = errors.New("domain: exactly one of staffId or teamId must be set")

	// ErrInvalidDates возвращается при некорректном порядке дат бронирования
	ErrInvalidDates = errors.New("domain: invalid booking dates")

	// ErrIncompletePricing возвращается, когда обязательные для режима цены поля отсутствуют
	ErrIncompletePricing = errors.New("domain: incomplete pricing fields")
)

// Booking represents a cleaning service booking in the system
type Booking struct {
	ID         int64
	CustomerID int64

	// Assignment: exactly one of StaffID or TeamID is set
	StaffID *int64
	TeamID  *int64

	// Temporal fields. EndDate is set only for multi-day bookings; EndTime is
	// relative to EndDate in that case.
	Date      time.Time
	EndDate   *time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	// Pricing
	PriceMode     PriceMode
	PackageID     *int64
	AreaSqm       *int
	Frequency     *string
	CustomPrice   *float64
	JobName       *string
	ResolvedPrice float64

	Status BookingStatus

	// RecurringGroupID ties the booking to the series that generated it
	RecurringGroupID *string

	// Denormalized data for history
	PackageName *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инвариант валидности бронирования: все четыре подпроверки
// (XOR назначения, полнота полей цены, порядок дат, допустимость статуса)
// должны выполняться одновременно
func (b *Booking) Validate() error {
	if err := b.validateAssignee(); err != nil {
		return err
	}
	if err := b.validatePricingFields(); err != nil {
		return err
	}
	if err := b.validateDates(); err != nil {
		return err
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, b.Status)
	}
	return nil
}

func (b *Booking) validateAssignee() error {
	hasStaff := b.StaffID != nil
	hasTeam := b.TeamID != nil

	if hasStaff == hasTeam {
		return ErrInvalidAssignee
	}
	return nil
}

func (b *Booking) validatePricingFields() error {
	switch b.PriceMode {
	case PriceModePackage:
		if b.PackageID == nil {
			return fmt.Errorf("%w: packageId is required for package mode", ErrIncompletePricing)
		}
	case PriceModeOverride:
		if b.PackageID == nil {
			return fmt.Errorf("%w: packageId is required for override mode", ErrIncompletePricing)
		}
		if b.CustomPrice == nil {
			return fmt.Errorf("%w: customPrice is required for override mode", ErrIncompletePricing)
		}
	case PriceModeCustom:
		if b.JobName == nil || *b.JobName == "" {
			return fmt.Errorf("%w: jobName is required for custom mode", ErrIncompletePricing)
		}
		if b.CustomPrice == nil {
			return fmt.Errorf("%w: customPrice is required for custom mode", ErrIncompletePricing)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPriceMode, b.PriceMode)
	}

	if b.CustomPrice != nil && *b.CustomPrice < 0 {
		return fmt.Errorf("%w: customPrice must be >= 0", ErrIncompletePricing)
	}

	return nil
}

func (b *Booking) validateDates() error {
	if b.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDates)
	}

	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	if b.EndDate != nil {
		if dateOnly(*b.EndDate).Before(dateOnly(b.Date)) {
			return fmt.Errorf("%w: endDate must not be before date", ErrInvalidDates)
		}
		// Для многодневного бронирования EndTime относится к EndDate,
		// порядок относительно StartTime не ограничен.
		// EndDate, совпадающий с Date, - это однодневное бронирование,
		// для него действует обычная проверка порядка времени
		if !sameDay(*b.EndDate, b.Date) {
			return nil
		}
	}

	if !b.StartTime.IsBefore(b.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidTimeRange)
	}

	return nil
}

// IsActive returns true if the booking still occupies its time slot.
// Cancelled and no-show bookings never block other work.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsTerminal returns true if the booking reached a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanBeCancelled returns true if the transition table permits cancelling
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, StatusCancelled)
}

// IsMultiDay returns true if the booking spans more than one calendar date
func (b *Booking) IsMultiDay() bool {
	return b.EndDate != nil && !sameDay(*b.EndDate, b.Date)
}

// LastDate returns the last calendar date the booking occupies
func (b *Booking) LastDate() time.Time {
	if b.EndDate != nil {
		return *b.EndDate
	}
	return b.Date
}

// OccupiesDate returns true if the booking occupies the given calendar date
func (b *Booking) OccupiesDate(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(b.Date)) && !d.After(dateOnly(b.LastDate()))
}

// EffectiveRangeOn returns the time interval the booking occupies on the given
// date. For multi-day bookings the first day runs from StartTime to midnight,
// the last day from midnight to EndTime, and every day between covers the
// whole day. Returns false if the booking does not occupy the date.
func (b *Booking) EffectiveRangeOn(date time.Time) (TimeRange, bool) {
	if !b.OccupiesDate(date) {
		return TimeRange{}, false
	}

	startMin, err := b.StartTime.Minutes()
	if err != nil {
		return TimeRange{}, false
	}
	endMin, err := b.EndTime.Minutes()
	if err != nil {
		return TimeRange{}, false
	}

	if !b.IsMultiDay() {
		return TimeRange{Start: startMin, End: endMin}, true
	}

	switch {
	case sameDay(date, b.Date):
		return TimeRange{Start: startMin, End: MinutesPerDay}, true
	case sameDay(date, b.LastDate()):
		return TimeRange{Start: 0, End: endMin}, true
	default:
		return FullDayRange(), true
	}
}

// SameAssignee returns true if both bookings are allocated to the same
// staff member or the same team
func (b *Booking) SameAssignee(other *Booking) bool {
	if b.StaffID != nil && other.StaffID != nil {
		return *b.StaffID == *other.StaffID
	}
	if b.TeamID != nil && other.TeamID != nil {
		return *b.TeamID == *other.TeamID
	}
	return false
}

// AssigneeBookingsFilter фильтр для выборки бронирований исполнителя
type AssigneeBookingsFilter struct {
	StaffID         *int64         // Ровно один из StaffID / TeamID должен быть задан
	TeamID          *int64
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show
	LockForUpdate   bool           // Заблокировать строки (FOR UPDATE); только внутри пишущей транзакции
}

// dateOnly обнуляет время, чтобы сравнивать только даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
