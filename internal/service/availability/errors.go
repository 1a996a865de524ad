package availability

import "errors"

var (
	// ErrDataUnavailable возвращается, когда хранилище недоступно или запрос завершился ошибкой
	ErrDataUnavailable = errors.New("availability: data unavailable")
)
