package leave_feedback

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("leave_feedback: booking not found")

	// ErrInvalidRating возвращается, когда оценка вне диапазона [1, 5]
	ErrInvalidRating = errors.New("leave_feedback: rating must be between 1 and 5")

	// ErrAlreadyRecorded возвращается при повторном отзыве
	ErrAlreadyRecorded = errors.New("leave_feedback: feedback already recorded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("leave_feedback: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("leave_feedback: internal error")
)
