package domain

import (
	"errors"
	"fmt"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

var (
	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("domain: illegal status transition")

	// ErrUnknownStatus возвращается для статуса вне закрытого перечисления
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)

// statusTransitions таблица допустимых переходов статусов
// Терминальные статусы (completed, cancelled, no_show) не имеют исходящих переходов
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// Transition validates a requested status change against the transition table
// and returns the new status. The machine is pure: persisting the new status
// (and any side effects like notifications) is the caller's responsibility.
func Transition(current, requested BookingStatus) (BookingStatus, error) {
	allowed, ok := statusTransitions[current]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}
	if _, ok := statusTransitions[requested]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, requested)
	}

	for _, s := range allowed {
		if s == requested {
			return requested, nil
		}
	}

	return "", fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, requested)
}

// CanTransition returns true if the transition table permits current -> requested
func CanTransition(current, requested BookingStatus) bool {
	_, err := Transition(current, requested)
	return err == nil
}

// IsTerminal returns true if the status permits no further transitions
func (s BookingStatus) IsTerminal() bool {
	allowed, ok := statusTransitions[s]
	return ok && len(allowed) == 0
}

// IsValid returns true if the status belongs to the closed enumeration
func (s BookingStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}
