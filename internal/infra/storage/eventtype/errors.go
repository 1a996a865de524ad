package eventtype

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип встречи не найден
	ErrEventTypeNotFound = errors.New("eventtype.repository: event type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("eventtype.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("eventtype.repository: failed to scan row")
)
