package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

var (
	// ErrUnavailable возвращается, когда интервал кандидата пересекается
	// с окном недоступности исполнителя
	ErrUnavailable = errors.New("availability: assignee is unavailable in the requested interval")
)

// Check проверяет кандидата против списка окон недоступности исполнителя
// (отпуска, больничные, плановые выходные). Окна поставляет вызывающая
// сторона - guard сам не делает никаких запросов к хранилищу.
// Проверка независима от детектора конфликтов: здесь учитывается только
// запланированное отсутствие, а не другие бронирования.
func Check(candidate *domain.Booking, windows []*domain.UnavailabilityWindow) error {
	for d := dateOnly(candidate.Date); !d.After(dateOnly(candidate.LastDate())); d = d.AddDate(0, 0, 1) {
		candidateRange, ok := candidate.EffectiveRangeOn(d)
		if !ok {
			continue
		}

		for _, w := range windows {
			if !windowMatchesAssignee(w, candidate) {
				continue
			}

			blocked, ok := w.RangeOn(d)
			if !ok {
				continue
			}

			if candidateRange.Overlaps(blocked) {
				return unavailableError(w, d)
			}
		}
	}

	return nil
}

func windowMatchesAssignee(w *domain.UnavailabilityWindow, b *domain.Booking) bool {
	if w.StaffID != nil && b.StaffID != nil {
		return *w.StaffID == *b.StaffID
	}
	if w.TeamID != nil && b.TeamID != nil {
		return *w.TeamID == *b.TeamID
	}
	return false
}

func unavailableError(w *domain.UnavailabilityWindow, date time.Time) error {
	if w.Reason != nil && *w.Reason != "" {
		return fmt.Errorf("%w: %s (%s)", ErrUnavailable, date.Format(domain.DateFormat), *w.Reason)
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, date.Format(domain.DateFormat))
}

// dateOnly обнуляет время, чтобы сравнивать только даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
