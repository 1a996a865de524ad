package slots

import "errors"

var (
	// ErrConfiguration возвращается, когда рабочие часы содержат некорректное время (не HH:MM).
	// Это повреждённые данные, а не отсутствие доступности.
	ErrConfiguration = errors.New("slots: malformed working hours")
)
