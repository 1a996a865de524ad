package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AvailabilityProvider интерфейс провайдера рабочих часов и занятых интервалов
type AvailabilityProvider interface {
	GetAvailability(ctx context.Context, username string, date time.Time) (*domain.AvailabilitySnapshot, error)
}

// SlotCalculator интерфейс калькулятора свободных слотов
type SlotCalculator interface {
	ComputeFreeSlots(
		window *domain.WorkingHoursWindow,
		busy []domain.BusyInterval,
		date time.Time,
		durationMinutes int,
		now time.Time,
	) ([]types.TimeString, error)
}

// EventTypeRepository интерфейс репозитория типов встреч
type EventTypeRepository interface {
	GetByUsernameAndURL(ctx context.Context, username, url string) (*domain.EventType, error)
}

// SlotsObserver получает количество выданных слотов (метрики). Может быть nil.
type SlotsObserver interface {
	ObserveSlots(result string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
