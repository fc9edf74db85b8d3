package journal

import "errors"

var (
	// ErrBranchNotFound возвращается для неизвестного филиала
	ErrBranchNotFound = errors.New("journal.service: branch not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("journal.service: internal error")
)
