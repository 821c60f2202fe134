package domain

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// UnavailabilityWindow represents a period in which an assignee is marked
// unavailable, independent of existing bookings: planned time off, sick leave,
// vacations. Either a full-day block (possibly spanning several dates) or a
// [StartTime, EndTime) sub-day block on a single range of dates.
type UnavailabilityWindow struct {
	ID int64

	// Ровно один из StaffID / TeamID задан
	StaffID *int64
	TeamID  *int64

	StartDate time.Time
	EndDate   *time.Time // nil = окно на один день

	FullDay   bool
	StartTime types.TimeString // Заданы только для sub-day окна
	EndTime   types.TimeString

	Reason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastDate returns the last calendar date the window covers
func (w *UnavailabilityWindow) LastDate() time.Time {
	if w.EndDate != nil {
		return *w.EndDate
	}
	return w.StartDate
}

// CoversDate returns true if the window covers the given calendar date
func (w *UnavailabilityWindow) CoversDate(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(w.StartDate)) && !d.After(dateOnly(w.LastDate()))
}

// RangeOn returns the blocked time interval on the given date.
// Full-day windows block the whole day. Returns false if the window does not
// cover the date or its times are malformed.
func (w *UnavailabilityWindow) RangeOn(date time.Time) (TimeRange, bool) {
	if !w.CoversDate(date) {
		return TimeRange{}, false
	}

	if w.FullDay {
		return FullDayRange(), true
	}

	blocked, err := NewTimeRange(w.StartTime, w.EndTime)
	if err != nil {
		return TimeRange{}, false
	}
	return blocked, true
}
