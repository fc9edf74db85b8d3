package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound общий признак "не найдено" для бронирований, филиалов и слотов
	ErrNotFound = errors.New("bookings.service: not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: booking", ErrNotFound)

	// ErrEmptySelection возвращается при попытке оценить пустой набор услуг
	ErrEmptySelection = errors.New("bookings.service: selection is empty")

	// ErrInvalidRating возвращается, когда оценка вне диапазона [1, 5]
	ErrInvalidRating = errors.New("bookings.service: rating must be between 1 and 5")

	// ErrAlreadyRecorded возвращается при повторном отзыве на бронирование
	ErrAlreadyRecorded = errors.New("bookings.service: feedback already recorded")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
