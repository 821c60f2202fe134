package conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

var june10 = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func staffBooking(id int64, staffID int64, day time.Time, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		StaffID:   ptr.Ptr(staffID),
		Date:      day,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func TestFindForCandidate(t *testing.T) {
	t.Run("overlapping bookings conflict", func(t *testing.T) {
		existing := []*domain.Booking{
			staffBooking(1, 7, june10, "09:00", "10:00"),
		}
		candidate := staffBooking(0, 7, june10, "09:30", "10:30")

		assert.Equal(t, []int64{1}, FindForCandidate(candidate, existing))
	})

	t.Run("touching bookings do not conflict", func(t *testing.T) {
		existing := []*domain.Booking{
			staffBooking(1, 7, june10, "09:00", "10:00"),
		}
		candidate := staffBooking(0, 7, june10, "10:00", "11:00")

		assert.Empty(t, FindForCandidate(candidate, existing))
	})

	t.Run("different assignee never conflicts", func(t *testing.T) {
		existing := []*domain.Booking{
			staffBooking(1, 8, june10, "09:00", "10:00"),
		}
		candidate := staffBooking(0, 7, june10, "09:00", "10:00")

		assert.Empty(t, FindForCandidate(candidate, existing))
	})

	t.Run("staff and team ids are separate namespaces", func(t *testing.T) {
		existing := []*domain.Booking{
			{
				ID:        1,
				TeamID:    ptr.Ptr(int64(7)),
				Date:      june10,
				StartTime: "09:00",
				EndTime:   "10:00",
				Status:    domain.StatusConfirmed,
			},
		}
		candidate := staffBooking(0, 7, june10, "09:00", "10:00")

		assert.Empty(t, FindForCandidate(candidate, existing))
	})

	t.Run("cancelled work never blocks", func(t *testing.T) {
		cancelled := staffBooking(1, 7, june10, "09:00", "10:00")
		cancelled.Status = domain.StatusCancelled
		noShow := staffBooking(2, 7, june10, "09:00", "10:00")
		noShow.Status = domain.StatusNoShow

		candidate := staffBooking(0, 7, june10, "09:30", "10:30")
		assert.Empty(t, FindForCandidate(candidate, []*domain.Booking{cancelled, noShow}))
	})

	t.Run("cancelled work is never blocked", func(t *testing.T) {
		existing := []*domain.Booking{
			staffBooking(1, 7, june10, "09:00", "10:00"),
		}
		candidate := staffBooking(0, 7, june10, "09:30", "10:30")
		candidate.Status = domain.StatusCancelled

		assert.Empty(t, FindForCandidate(candidate, existing))
	})

	t.Run("completed work still blocks", func(t *testing.T) {
		done := staffBooking(1, 7, june10, "09:00", "10:00")
		done.Status = domain.StatusCompleted

		candidate := staffBooking(0, 7, june10, "09:30", "10:30")
		assert.Equal(t, []int64{1}, FindForCandidate(candidate, []*domain.Booking{done}))
	})

	t.Run("different dates do not conflict", func(t *testing.T) {
		existing := []*domain.Booking{
			staffBooking(1, 7, june10.AddDate(0, 0, 1), "09:00", "10:00"),
		}
		candidate := staffBooking(0, 7, june10, "09:00", "10:00")

		assert.Empty(t, FindForCandidate(candidate, existing))
	})

	t.Run("multi-day booking conflicts on middle day", func(t *testing.T) {
		multiDay := staffBooking(1, 7, june10, "14:00", "12:00")
		multiDay.EndDate = ptr.Ptr(june10.AddDate(0, 0, 2)) // 10-12 июня

		candidate := staffBooking(0, 7, june10.AddDate(0, 0, 1), "09:00", "10:00")
		assert.Equal(t, []int64{1}, FindForCandidate(candidate, []*domain.Booking{multiDay}))
	})

	t.Run("multi-day booking free after end time on last day", func(t *testing.T) {
		multiDay := staffBooking(1, 7, june10, "14:00", "12:00")
		multiDay.EndDate = ptr.Ptr(june10.AddDate(0, 0, 2))

		candidate := staffBooking(0, 7, june10.AddDate(0, 0, 2), "13:00", "15:00")
		assert.Empty(t, FindForCandidate(candidate, []*domain.Booking{multiDay}))
	})

	t.Run("candidate excluded from its own conflicts on update", func(t *testing.T) {
		existing := []*domain.Booking{
			staffBooking(5, 7, june10, "09:00", "10:00"),
		}
		candidate := staffBooking(5, 7, june10, "09:00", "10:00")

		assert.Empty(t, FindForCandidate(candidate, existing))
	})
}

func TestBuild(t *testing.T) {
	t.Run("pairwise conflicts are symmetric", func(t *testing.T) {
		// 09:00-10:00 и 09:30-10:30 конфликтуют; 10:00-11:00 граничит с первым
		bookings := []*domain.Booking{
			staffBooking(1, 7, june10, "09:00", "10:00"),
			staffBooking(2, 7, june10, "09:30", "10:30"),
			staffBooking(3, 7, june10, "10:00", "11:00"),
		}

		set := Build(bookings)
		assert.True(t, set.HasConflicts())
		assert.ElementsMatch(t, []int64{2}, set[1])
		assert.ElementsMatch(t, []int64{1, 3}, set[2])
		assert.ElementsMatch(t, []int64{2}, set[3])
	})

	t.Run("no conflicts", func(t *testing.T) {
		bookings := []*domain.Booking{
			staffBooking(1, 7, june10, "09:00", "10:00"),
			staffBooking(2, 7, june10, "10:00", "11:00"),
		}

		set := Build(bookings)
		assert.False(t, set.HasConflicts())
		assert.Empty(t, set)
	})
}
