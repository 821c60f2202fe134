package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeFormat    = "15:04"
	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время суток в формате "HH:MM"
// Используется для хранения времени слотов без привязки к дате и таймзоне
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что строка соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: expected HH:MM, got %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: expected HH:MM, got %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
// Переход через полночь заворачивается (23:50 + 20 минут = 00:10)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := (current + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если время строго раньше other
// Лексикографическое сравнение корректно для формата "HH:MM"
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan реализует sql.Scanner для чтения из колонок TIME / VARCHAR
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateToMinutes(v)
		return nil
	case []byte:
		*t = truncateToMinutes(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// truncateToMinutes обрезает "10:00:00" (формат TIME в postgres) до "10:00"
func truncateToMinutes(s string) TimeString {
	if len(s) > len(timeFormat) {
		return TimeString(s[:len(timeFormat)])
	}
	return TimeString(s)
}
