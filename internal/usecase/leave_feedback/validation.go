package leave_feedback

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Диапазон оценки проверяет сервис бронирований
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Review) > domain.MaxReviewLength {
		return fmt.Errorf("%w: review is longer than %d characters", ErrInvalidInput, domain.MaxReviewLength)
	}

	return nil
}
