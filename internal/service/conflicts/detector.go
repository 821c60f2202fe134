package conflicts

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

// ConflictSet отображение id бронирования в список id бронирований,
// с которыми оно пересекается по времени. Структура не персистентна,
// пересчитывается по запросу из актуальной коллекции бронирований.
type ConflictSet map[int64][]int64

// HasConflicts returns true if at least one pair of bookings overlaps
func (cs ConflictSet) HasConflicts() bool {
	return len(cs) > 0
}

// FindForCandidate находит бронирования, пересекающиеся с кандидатом по
// времени у того же исполнителя. Детектор только сообщает о конфликтах:
// решение отклонить или предупредить принимает вызывающая сторона.
// Отменённые и no-show бронирования не участвуют в сравнении с обеих сторон.
func FindForCandidate(candidate *domain.Booking, existing []*domain.Booking) []int64 {
	conflicting := make([]int64, 0)

	if !candidate.IsActive() {
		return conflicting
	}

	for _, other := range existing {
		if other.ID != 0 && other.ID == candidate.ID {
			continue
		}
		if !candidate.SameAssignee(other) {
			continue
		}
		if bookingsOverlap(candidate, other) {
			conflicting = append(conflicting, other.ID)
		}
	}

	return conflicting
}

// Build строит полную карту конфликтов для коллекции бронирований
// Используется для подсветки пересечений в календаре за период
func Build(bookings []*domain.Booking) ConflictSet {
	set := make(ConflictSet)

	for i, a := range bookings {
		for _, b := range bookings[i+1:] {
			if !a.SameAssignee(b) {
				continue
			}
			if !bookingsOverlap(a, b) {
				continue
			}
			set[a.ID] = append(set[a.ID], b.ID)
			set[b.ID] = append(set[b.ID], a.ID)
		}
	}

	return set
}

// bookingsOverlap проверяет пересечение двух бронирований по дням
// Многодневное бронирование занимает каждую дату из [date, endDate];
// пересечение хотя бы в один день означает конфликт всего бронирования
func bookingsOverlap(a, b *domain.Booking) bool {
	if !a.IsActive() || !b.IsActive() {
		return false
	}

	start := laterDate(a.Date, b.Date)
	end := earlierDate(a.LastDate(), b.LastDate())

	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		rangeA, okA := a.EffectiveRangeOn(d)
		rangeB, okB := b.EffectiveRangeOn(d)
		if okA && okB && rangeA.Overlaps(rangeB) {
			return true
		}
	}

	return false
}

func laterDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// dateOnly обнуляет время, чтобы сравнивать только даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
