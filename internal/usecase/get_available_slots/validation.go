package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDurationMinutes int) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Длительность или тип встречи должны быть указаны
	if req.DurationMinutes == 0 && req.EventTypeURL == "" {
		return fmt.Errorf("%w: duration or event type is required", ErrInvalidDuration)
	}

	if req.DurationMinutes != 0 {
		return validateDuration(req.DurationMinutes, maxDurationMinutes)
	}

	return nil
}

// validateDuration проверяет, что длительность положительна и не превышает maxDurationMinutes
func validateDuration(durationMinutes, maxDurationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidDuration, durationMinutes)
	}
	if maxDurationMinutes > 0 && durationMinutes > maxDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes, got %d",
			ErrInvalidDuration, maxDurationMinutes, durationMinutes)
	}
	return nil
}
