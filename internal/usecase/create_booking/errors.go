package create_booking

import "errors"

var (
	// ErrNotFound возвращается, когда филиал, слот или услуга не найдены
	ErrNotFound = errors.New("create_booking: not found")

	// ErrEmptySelection возвращается, когда после отмены не осталось услуг
	ErrEmptySelection = errors.New("create_booking: no services selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
