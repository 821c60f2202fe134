package generate_series

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_series: invalid input data")

	// ErrInvalidRecurrence возвращается при некорректном правиле повторения
	ErrInvalidRecurrence = errors.New("generate_series: invalid recurrence rule")

	// ErrSeriesTooLarge возвращается, когда правило раскрывается в слишком длинную серию
	ErrSeriesTooLarge = errors.New("generate_series: series expands to too many dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_series: internal error")
)
