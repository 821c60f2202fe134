package pricing

import "errors"

var (
	// ErrMissingPackage возвращается, когда packageId не указан или пакет не найден
	ErrMissingPackage = errors.New("pricing: package is required and must exist")

	// ErrInvalidPrice возвращается, когда customPrice не указан или отрицателен
	ErrInvalidPrice = errors.New("pricing: custom price is required and must be >= 0")

	// ErrMissingJobName возвращается, когда для произвольной работы не указано название
	ErrMissingJobName = errors.New("pricing: job name is required for custom mode")

	// ErrNoMatchingTier возвращается, когда ни один тариф пакета не подходит
	// под указанные площадь и частоту уборки
	ErrNoMatchingTier = errors.New("pricing: no price tier matches area and frequency")

	// ErrInvalidMode возвращается для режима цены вне закрытого перечисления
	ErrInvalidMode = errors.New("pricing: unknown price mode")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
