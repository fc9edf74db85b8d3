package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound общий признак неизвестного ключа каталога
	ErrNotFound = errors.New("catalog: not found")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = fmt.Errorf("%w: branch", ErrNotFound)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: slot", ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("%w: service", ErrNotFound)
)
