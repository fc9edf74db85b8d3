package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchKey != "" && strings.TrimSpace(req.BranchKey) == "" {
		return fmt.Errorf("%w: branchKey is blank", ErrInvalidInput)
	}
	return nil
}
