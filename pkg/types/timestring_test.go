package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"9:30", "25:00", "10:61", "10.30", ""} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)

	midnight := TimeString("00:00")
	minutes, err = midnight.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestAddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, err := TimeString("10:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:30"), ts)
	})

	t.Run("wraps past midnight", func(t *testing.T) {
		ts, err := TimeString("23:50").AddMinutes(20)
		require.NoError(t, err)
		assert.Equal(t, TimeString("00:10"), ts)
	})

	t.Run("negative offset wraps back", func(t *testing.T) {
		ts, err := TimeString("00:10").AddMinutes(-20)
		require.NoError(t, err)
		assert.Equal(t, TimeString("23:50"), ts)
	})
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	t.Run("postgres TIME with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("18:15")))
		assert.Equal(t, TimeString("18:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 7, 5, 33, 0, time.UTC)))
		assert.Equal(t, TimeString("07:05"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
