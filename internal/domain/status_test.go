package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	legal := []struct {
		from, to BookingStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}

	for _, tc := range legal {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			got, err := Transition(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}

	illegal := []struct {
		from, to BookingStatus
	}{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusPending, StatusNoShow},
		{StatusConfirmed, StatusCompleted},
		{StatusInProgress, StatusNoShow},
		{StatusInProgress, StatusConfirmed},
		{StatusConfirmed, StatusPending},
	}

	for _, tc := range illegal {
		t.Run("illegal_"+string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			_, err := Transition(tc.from, tc.to)
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}

	t.Run("unknown statuses", func(t *testing.T) {
		_, err := Transition(BookingStatus("archived"), StatusConfirmed)
		assert.ErrorIs(t, err, ErrUnknownStatus)

		_, err = Transition(StatusPending, BookingStatus("archived"))
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestTransition_TerminalStatesAreAbsorbing(t *testing.T) {
	terminal := []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow}
	all := []BookingStatus{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	}

	for _, from := range terminal {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			_, err := Transition(from, to)
			assert.ErrorIs(t, err, ErrIllegalTransition,
				"terminal status %s must not transition to %s", from, to)
		}
	}
}

func TestTransition_NoPathOutOfTerminal(t *testing.T) {
	// Никакая цепочка из двух переходов не может пройти через терминальный статус
	all := []BookingStatus{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	}

	for _, a := range all {
		for _, b := range all {
			mid, err := Transition(a, b)
			if err != nil {
				continue
			}
			if !mid.IsTerminal() {
				continue
			}
			for _, c := range all {
				_, err := Transition(mid, c)
				assert.Error(t, err, "path %s -> %s -> %s must be impossible", a, mid, c)
			}
		}
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("unknown_state")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseBookingStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
