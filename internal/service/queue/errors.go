package queue

import "errors"

var (
	// ErrInvalidInput возвращается при пустом имени клиента
	ErrInvalidInput = errors.New("queue.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("queue.service: internal error")
)
