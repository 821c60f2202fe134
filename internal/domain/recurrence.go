package domain

import (
	"errors"
	"fmt"
	"time"
)

// RecurrencePattern is the repetition pattern of a recurrence rule
type RecurrencePattern string

const (
	PatternDaily    RecurrencePattern = "daily"
	PatternWeekly   RecurrencePattern = "weekly"
	PatternBiweekly RecurrencePattern = "biweekly"
	PatternMonthly  RecurrencePattern = "monthly"
)

var (
	// ErrInvalidRecurrence возвращается при некорректном правиле повторения
	ErrInvalidRecurrence = errors.New("domain: invalid recurrence rule")

	// ErrSeriesTooLarge возвращается, когда правило раскрывается более чем в MaxSeriesDates дат
	ErrSeriesTooLarge = errors.New("domain: recurrence series exceeds maximum size")
)

// ParseRecurrencePattern parses a string into a RecurrencePattern.
func ParseRecurrencePattern(s string) (RecurrencePattern, error) {
	switch p := RecurrencePattern(s); p {
	case PatternDaily, PatternWeekly, PatternBiweekly, PatternMonthly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, s)
	}
}

// RecurrenceRule describes how a booking series repeats between StartDate and
// EndDate inclusive. Weekdays applies to weekly and biweekly patterns; when
// empty, the weekday of StartDate is used. Biweekly strides every other week
// anchored to StartDate's week (weeks start on Monday). Monthly repeats on
// StartDate's day of month, clamped to the last day of shorter months.
type RecurrenceRule struct {
	Pattern   RecurrencePattern
	StartDate time.Time
	EndDate   time.Time
	Weekdays  []time.Weekday
}

// Validate проверяет корректность правила повторения
func (r *RecurrenceRule) Validate() error {
	switch r.Pattern {
	case PatternDaily, PatternWeekly, PatternBiweekly, PatternMonthly:
	default:
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, r.Pattern)
	}

	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidRecurrence)
	}

	if dateOnly(r.EndDate).Before(dateOnly(r.StartDate)) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidRecurrence)
	}

	return nil
}

// ExpandDates раскрывает правило в упорядоченный список дат без дубликатов.
// Если правило порождает больше MaxSeriesDates дат, вся операция завершается
// ошибкой ErrSeriesTooLarge - молчаливое усечение серии недопустимо.
func (r *RecurrenceRule) ExpandDates() ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	start := dateOnly(r.StartDate)
	end := dateOnly(r.EndDate)

	var dates []time.Time
	switch r.Pattern {
	case PatternDaily:
		dates = r.expandDaily(start, end)
	case PatternWeekly, PatternBiweekly:
		dates = r.expandWeekly(start, end)
	case PatternMonthly:
		dates = r.expandMonthly(start, end)
	}

	if len(dates) > MaxSeriesDates {
		return nil, fmt.Errorf("%w: %d dates generated, maximum is %d", ErrSeriesTooLarge, len(dates), MaxSeriesDates)
	}

	return dates, nil
}

func (r *RecurrenceRule) expandDaily(start, end time.Time) []time.Time {
	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r *RecurrenceRule) expandWeekly(start, end time.Time) []time.Time {
	weekdays := r.weekdaySet(start)
	anchorWeek := weekStart(start)

	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !weekdays[d.Weekday()] {
			continue
		}

		if r.Pattern == PatternBiweekly {
			// Недели считаются от недели StartDate, включаются только чётные
			weeks := int(weekStart(d).Sub(anchorWeek).Hours()) / (24 * 7)
			if weeks%2 != 0 {
				continue
			}
		}

		dates = append(dates, d)
	}
	return dates
}

func (r *RecurrenceRule) expandMonthly(start, end time.Time) []time.Time {
	anchorDay := start.Day()

	dates := make([]time.Time, 0)
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()); !month.After(end); month = month.AddDate(0, 1, 0) {
		day := anchorDay
		if last := daysInMonth(month); day > last {
			// В коротком месяце якорный день прижимается к последнему дню
			day = last
		}

		d := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location())
		if d.Before(start) || d.After(end) {
			continue
		}

		dates = append(dates, d)
	}
	return dates
}

// weekdaySet возвращает множество дней недели правила без дубликатов
// Пустой список означает день недели StartDate
func (r *RecurrenceRule) weekdaySet(start time.Time) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool)
	if len(r.Weekdays) == 0 {
		set[start.Weekday()] = true
		return set
	}

	for _, wd := range r.Weekdays {
		set[wd] = true
	}
	return set
}

// weekStart возвращает понедельник недели, содержащей дату
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return dateOnly(d).AddDate(0, 0, -offset)
}

// daysInMonth возвращает количество дней в месяце даты
func daysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}
