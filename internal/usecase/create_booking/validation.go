package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if strings.TrimSpace(req.BranchKey) == "" {
		return fmt.Errorf("%w: branchKey is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SlotKey) == "" {
		return fmt.Errorf("%w: slotKey is required", ErrInvalidInput)
	}

	if len(req.Services) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	for i, s := range req.Services {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: services[%d] is empty", ErrInvalidInput, i)
		}
	}

	return nil
}
