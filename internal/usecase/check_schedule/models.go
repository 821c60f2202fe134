package check_schedule

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// Request модель запроса на проверку интервала расписания
type Request struct {
	StaffID   *int64           // ID сотрудника (ровно один из StaffID/TeamID)
	TeamID    *int64           // ID бригады
	Date      time.Time        // Дата проверяемого интервала
	EndDate   *time.Time       // Дата окончания для многодневных работ (опционально)
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания

	// ID бронирования, исключаемого из проверки конфликтов
	// (для проверки переноса существующего бронирования)
	ExcludeBookingID *int64
}

// Response результат проверки интервала
// Проверка консультативная: положительный ответ не резервирует интервал,
// гонку закрывает сериализуемая транзакция при создании
type Response struct {
	Available          bool    `json:"available"`
	ConflictBookingIDs []int64 `json:"conflictBookingIds,omitempty"`
	UnavailableReason  *string `json:"unavailableReason,omitempty"`
}
