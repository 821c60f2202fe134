package generate_series

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// Request модель запроса на генерацию повторяющейся серии бронирований
type Request struct {
	CustomerID int64            // ID клиента
	StaffID    *int64           // ID сотрудника (ровно один из StaffID/TeamID)
	TeamID     *int64           // ID бригады
	StartTime  types.TimeString // Время начала каждого бронирования
	EndTime    types.TimeString // Время окончания каждого бронирования

	// Правило повторения
	Pattern   string    // daily, weekly, biweekly или monthly
	StartDate time.Time // Первая дата серии (якорь)
	EndDate   time.Time // Последняя дата серии (включительно)
	Weekdays  []string  // Дни недели для weekly/biweekly (например, "monday")

	// Ценообразование (одинаково для всех бронирований серии)
	PriceMode   string
	PackageID   *int64
	AreaSqm     *int
	Frequency   *string
	CustomPrice *float64
	JobName     *string

	Notes *string // Заметки (копируются в каждое бронирование)
}

// DateError ошибка создания бронирования на конкретную дату серии
type DateError struct {
	Date  string `json:"date"` // "2025-10-15"
	Error string `json:"error"`
}

// Response модель ответа с результатом генерации серии
// Серия создаётся в режиме частичного успеха: непригодные даты
// попадают в Errors, остальные бронирования создаются
type Response struct {
	GroupID string                     // ID серии (общий для всех созданных бронирований)
	Created []*create_booking.Response // Успешно созданные бронирования
	Errors  []DateError                // Даты, на которые создать не удалось
}
