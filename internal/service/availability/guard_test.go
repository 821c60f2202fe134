package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

var july1 = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func candidateFor(staffID int64, day time.Time) *domain.Booking {
	return &domain.Booking{
		StaffID:   ptr.Ptr(staffID),
		Date:      day,
		StartTime: "10:00",
		EndTime:   "12:00",
		Status:    domain.StatusPending,
	}
}

func TestCheck(t *testing.T) {
	t.Run("no windows", func(t *testing.T) {
		assert.NoError(t, Check(candidateFor(1, july1), nil))
	})

	t.Run("full-day block", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(1)), StartDate: july1, FullDay: true, Reason: ptr.Ptr("отпуск")},
		}

		err := Check(candidateFor(1, july1), windows)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("full-day block on another date", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(1)), StartDate: july1.AddDate(0, 0, 1), FullDay: true},
		}

		assert.NoError(t, Check(candidateFor(1, july1), windows))
	})

	t.Run("sub-day block overlapping", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(1)), StartDate: july1, StartTime: "11:00", EndTime: "13:00"},
		}

		err := Check(candidateFor(1, july1), windows)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("sub-day block touching does not block", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(1)), StartDate: july1, StartTime: "12:00", EndTime: "14:00"},
		}

		assert.NoError(t, Check(candidateFor(1, july1), windows))
	})

	t.Run("window of another staff member ignored", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(2)), StartDate: july1, FullDay: true},
		}

		assert.NoError(t, Check(candidateFor(1, july1), windows))
	})

	t.Run("team window does not apply to staff booking", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{TeamID: ptr.Ptr(int64(1)), StartDate: july1, FullDay: true},
		}

		assert.NoError(t, Check(candidateFor(1, july1), windows))
	})

	t.Run("vacation range blocks middle day", func(t *testing.T) {
		windows := []*domain.UnavailabilityWindow{
			{
				StaffID:   ptr.Ptr(int64(1)),
				StartDate: july1.AddDate(0, 0, -3),
				EndDate:   ptr.Ptr(july1.AddDate(0, 0, 3)),
				FullDay:   true,
			},
		}

		err := Check(candidateFor(1, july1), windows)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("multi-day candidate blocked by window on last day", func(t *testing.T) {
		candidate := candidateFor(1, july1)
		candidate.EndDate = ptr.Ptr(july1.AddDate(0, 0, 2))
		candidate.StartTime = "20:00"
		candidate.EndTime = "08:00"

		windows := []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(1)), StartDate: july1.AddDate(0, 0, 2), StartTime: "06:00", EndTime: "07:00"},
		}

		err := Check(candidate, windows)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
