package catalogservice

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет услуг не найден
	ErrPackageNotFound = errors.New("package not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
