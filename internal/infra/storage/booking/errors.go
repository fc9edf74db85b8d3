package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateID возвращается при попытке сохранить бронирование с уже занятым ID
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrFeedbackAlreadyRecorded возвращается при повторном прикреплении отзыва
	ErrFeedbackAlreadyRecorded = errors.New("booking.repository: feedback already recorded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
