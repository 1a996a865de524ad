package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается при неположительной или слишком большой длительности встречи
	ErrInvalidDuration = errors.New("invalid meeting duration")

	// ErrEventTypeNotFound возвращается, когда тип встречи не найден или неактивен
	ErrEventTypeNotFound = errors.New("event type not found")

	// ErrDataUnavailable возвращается, когда хранилище недоступно
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrConfiguration возвращается, когда рабочие часы пользователя повреждены
	ErrConfiguration = errors.New("malformed working hours")
)
