package create_booking

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента
	StaffID    *int64           // ID сотрудника (ровно один из StaffID/TeamID)
	TeamID     *int64           // ID бригады
	Date       time.Time        // Дата бронирования (без времени)
	EndDate    *time.Time       // Дата окончания для многодневных работ (опционально)
	StartTime  types.TimeString // Время начала (например, "10:00")
	EndTime    types.TimeString // Время окончания

	// Ценообразование
	PriceMode   string   // Режим: package, override или custom
	PackageID   *int64   // ID пакета услуг (для package и override)
	AreaSqm     *int     // Площадь объекта (для выбора тарифа)
	Frequency   *string  // Частота уборки (для выбора тарифа)
	CustomPrice *float64 // Цена вручную (для override и custom)
	JobName     *string  // Название разовой работы (для custom)

	Notes            *string // Дополнительные заметки (опционально)
	RecurringGroupID *string // ID повторяющейся серии (заполняет генератор серий)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64            // ID созданного бронирования
	CustomerID int64            // ID клиента
	StaffID    *int64           // ID сотрудника
	TeamID     *int64           // ID бригады
	Date       time.Time        // Дата бронирования
	EndDate    *time.Time       // Дата окончания (для многодневных работ)
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время окончания
	Status     string           // Статус бронирования

	// Результат расчёта цены
	PriceMode     string  // Режим ценообразования
	ResolvedPrice float64 // Итоговая цена
	PackageID     *int64  // ID пакета (если применим)
	PackageName   *string // Название пакета (денормализация)
	JobName       *string // Название разовой работы

	RecurringGroupID *string // ID серии (если бронирование из серии)
	Notes            *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
