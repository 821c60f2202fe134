package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

func mustRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	r, err := NewTimeRange(types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return r
}

func TestNewTimeRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := NewTimeRange("09:00", "10:30")
		require.NoError(t, err)
		assert.Equal(t, 540, r.Start)
		assert.Equal(t, 630, r.End)
		assert.Equal(t, 90, r.DurationMinutes())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewTimeRange("10:00", "09:00")
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("empty range", func(t *testing.T) {
		_, err := NewTimeRange("10:00", "10:00")
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := NewTimeRange("9am", "10:00")
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestTimeRange_Overlaps(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		a := mustRange(t, "09:00", "10:00")
		b := mustRange(t, "09:30", "10:30")
		assert.True(t, a.Overlaps(b))
	})

	t.Run("touching intervals do not overlap", func(t *testing.T) {
		a := mustRange(t, "09:00", "10:00")
		b := mustRange(t, "10:00", "11:00")
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("containment", func(t *testing.T) {
		outer := mustRange(t, "08:00", "12:00")
		inner := mustRange(t, "09:00", "10:00")
		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})

	t.Run("disjoint", func(t *testing.T) {
		a := mustRange(t, "08:00", "09:00")
		b := mustRange(t, "14:00", "15:00")
		assert.False(t, a.Overlaps(b))
	})

	t.Run("symmetry", func(t *testing.T) {
		ranges := []TimeRange{
			mustRange(t, "00:00", "01:00"),
			mustRange(t, "00:30", "02:00"),
			mustRange(t, "01:00", "03:00"),
			mustRange(t, "02:59", "23:59"),
			FullDayRange(),
		}

		for _, a := range ranges {
			for _, b := range ranges {
				assert.Equal(t, a.Overlaps(b), b.Overlaps(a),
					"overlaps must be symmetric for %v and %v", a, b)
			}
		}
	})

	t.Run("non-empty interval overlaps itself", func(t *testing.T) {
		r := mustRange(t, "09:00", "09:01")
		assert.True(t, r.Overlaps(r))
	})
}

func TestFullDayRange(t *testing.T) {
	r := FullDayRange()
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, MinutesPerDay, r.End)
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Overlaps(mustRange(t, "23:00", "23:30")))
}
