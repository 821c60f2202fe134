package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func days(dates []time.Time) []int {
	result := make([]int, len(dates))
	for i, d := range dates {
		result[i] = d.Day()
	}
	return result
}

func TestRecurrenceRule_Validate(t *testing.T) {
	t.Run("unknown pattern", func(t *testing.T) {
		rule := RecurrenceRule{Pattern: "yearly", StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 31)}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRecurrence)
	})

	t.Run("end before start", func(t *testing.T) {
		rule := RecurrenceRule{Pattern: PatternDaily, StartDate: date(2025, 1, 10), EndDate: date(2025, 1, 1)}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRecurrence)
	})

	t.Run("missing dates", func(t *testing.T) {
		rule := RecurrenceRule{Pattern: PatternDaily}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRecurrence)
	})
}

func TestRecurrenceRule_ExpandDates_Daily(t *testing.T) {
	rule := RecurrenceRule{
		Pattern:   PatternDaily,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 7),
	}

	dates, err := rule.ExpandDates()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, days(dates))
}

func TestRecurrenceRule_ExpandDates_Weekly(t *testing.T) {
	// Январь 2025: понедельники 6, 13, 20, 27; среды 1, 8, 15, 22, 29
	rule := RecurrenceRule{
		Pattern:   PatternWeekly,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 31),
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
	}

	dates, err := rule.ExpandDates()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 8, 13, 15, 20, 22, 27, 29}, days(dates))

	// Упорядоченность и отсутствие дубликатов
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]))
	}
}

func TestRecurrenceRule_ExpandDates_WeeklyDefaultsToStartWeekday(t *testing.T) {
	// 2025-01-01 - среда; без списка дней недели повторяем по средам
	rule := RecurrenceRule{
		Pattern:   PatternWeekly,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 31),
	}

	dates, err := rule.ExpandDates()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 15, 22, 29}, days(dates))
}

func TestRecurrenceRule_ExpandDates_Biweekly(t *testing.T) {
	// Якорная неделя - неделя 2025-01-01 (пн 2024-12-30)
	// Чётные недели: 30.12-05.01, 13.01-19.01, 27.01-02.02
	rule := RecurrenceRule{
		Pattern:   PatternBiweekly,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 31),
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
	}

	dates, err := rule.ExpandDates()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 13, 15, 27, 29}, days(dates))
}

func TestRecurrenceRule_ExpandDates_Monthly(t *testing.T) {
	t.Run("regular day", func(t *testing.T) {
		rule := RecurrenceRule{
			Pattern:   PatternMonthly,
			StartDate: date(2025, 1, 15),
			EndDate:   date(2025, 4, 30),
		}

		dates, err := rule.ExpandDates()
		require.NoError(t, err)
		require.Len(t, dates, 4)
		assert.Equal(t, date(2025, 1, 15), dates[0])
		assert.Equal(t, date(2025, 4, 15), dates[3])
	})

	t.Run("anchor day clamped in short months", func(t *testing.T) {
		rule := RecurrenceRule{
			Pattern:   PatternMonthly,
			StartDate: date(2025, 1, 31),
			EndDate:   date(2025, 4, 30),
		}

		dates, err := rule.ExpandDates()
		require.NoError(t, err)
		require.Len(t, dates, 4)
		assert.Equal(t, date(2025, 1, 31), dates[0])
		assert.Equal(t, date(2025, 2, 28), dates[1]) // февраль прижат к 28
		assert.Equal(t, date(2025, 3, 31), dates[2])
		assert.Equal(t, date(2025, 4, 30), dates[3]) // апрель прижат к 30
	})
}

func TestRecurrenceRule_ExpandDates_SeriesTooLarge(t *testing.T) {
	rule := RecurrenceRule{
		Pattern:   PatternDaily,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 3, 1), // 60 дат
	}

	_, err := rule.ExpandDates()
	assert.ErrorIs(t, err, ErrSeriesTooLarge)
}

func TestRecurrenceRule_ExpandDates_AtMaximum(t *testing.T) {
	rule := RecurrenceRule{
		Pattern:   PatternDaily,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 1).AddDate(0, 0, MaxSeriesDates-1), // ровно 50 дат
	}

	dates, err := rule.ExpandDates()
	require.NoError(t, err)
	assert.Len(t, dates, MaxSeriesDates)
}

func TestRecurrenceRule_ExpandDates_DuplicateWeekdays(t *testing.T) {
	rule := RecurrenceRule{
		Pattern:   PatternWeekly,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 14),
		Weekdays:  []time.Weekday{time.Wednesday, time.Wednesday},
	}

	dates, err := rule.ExpandDates()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8}, days(dates))
}
