package domain

// Business validation constants
const (
	MaxSeriesDates              = 50 // Maximum number of dates one recurrence rule may expand to
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxJobNameLength            = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay количество минут в сутках, верхняя граница TimeRange
const MinutesPerDay = 24 * 60

// InactiveStatuses список статусов, при которых бронирование не занимает время
// Используется детектором конфликтов: отменённая работа никого не блокирует
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, при которых бронирование занимает время
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
