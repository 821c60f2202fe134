package pricing

import "github.com/m04kA/CMS-SchedulingService/internal/domain"

// Request запрос на расчёт цены бронирования
type Request struct {
	Mode        domain.PriceMode
	PackageID   *int64   // Обязателен для режимов package и override
	AreaSqm     *int     // Площадь объекта для выбора тарифа (опционально)
	Frequency   *string  // Частота уборки для выбора тарифа (опционально)
	CustomPrice *float64 // Обязателен для режимов override и custom, >= 0
	JobName     *string  // Обязателен для режима custom
}

// Resolution результат расчёта цены
// Price всегда неотрицательна; дефолтных цен не существует
type Resolution struct {
	Price       float64
	PackageID   *int64
	PackageName *string
	JobName     *string
}
