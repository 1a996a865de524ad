package availability

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// WindowRepository интерфейс репозитория рабочих часов
type WindowRepository interface {
	GetByUsernameAndDay(ctx context.Context, username string, day domain.Weekday) (*domain.WorkingHoursWindow, error)
}

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	GetBusyIntervals(ctx context.Context, filter domain.BusyIntervalsFilter) ([]domain.BusyInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
