package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrMissingPackage возвращается, когда пакет услуг не указан или не найден
	ErrMissingPackage = errors.New("create_booking: package not specified or not found")

	// ErrInvalidPrice возвращается, когда цена не указана или отрицательна
	ErrInvalidPrice = errors.New("create_booking: price is missing or negative")

	// ErrMissingJobName возвращается, когда для разовой работы не указано название
	ErrMissingJobName = errors.New("create_booking: job name is required for custom pricing")

	// ErrNoMatchingTier возвращается, когда в пакете нет подходящего тарифа
	ErrNoMatchingTier = errors.New("create_booking: no matching price tier in package")

	// ErrAssigneeUnavailable возвращается, когда интервал попадает в окно недоступности исполнителя
	ErrAssigneeUnavailable = errors.New("create_booking: assignee is unavailable in the requested interval")

	// ErrScheduleConflict возвращается, когда интервал пересекается с другим активным бронированием
	ErrScheduleConflict = errors.New("create_booking: interval conflicts with an existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
