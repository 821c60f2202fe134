package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

var (
	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("domain: invalid time range")
)

// TimeRange represents a half-open interval [Start, End) in minutes since midnight.
// All comparisons are integer minute arithmetic; callers normalize everything
// to the single business timezone before building ranges.
type TimeRange struct {
	Start int
	End   int
}

// NewTimeRange builds a range from two times of day.
// End must be strictly after Start; an empty range is a validation error.
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	endMin, err := end.Minutes()
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	if endMin <= startMin {
		return TimeRange{}, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeRange, end, start)
	}

	return TimeRange{Start: startMin, End: endMin}, nil
}

// FullDayRange returns the range covering the whole day [00:00, 24:00)
func FullDayRange() TimeRange {
	return TimeRange{Start: 0, End: MinutesPerDay}
}

// Overlaps returns true if the two half-open intervals share at least one minute.
// Touching intervals (one ends exactly where the other starts) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// DurationMinutes returns the length of the interval in minutes
func (r TimeRange) DurationMinutes() int {
	return r.End - r.Start
}

// IsEmpty returns true if the interval contains no minutes
func (r TimeRange) IsEmpty() bool {
	return r.End <= r.Start
}
