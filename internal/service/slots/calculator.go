// Package slots вычисляет свободные слоты для бронирования встречи.
// Пакет не выполняет I/O и не читает текущее время: все входные данные передаются явно.
package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Calculator вычисляет свободные слоты по рабочим часам и занятым интервалам
type Calculator struct {
	boundary domain.SlotBoundaryPolicy
}

// NewCalculator создает калькулятор с указанной политикой границы последнего слота.
// Пустая политика означает domain.BoundaryLenient.
func NewCalculator(boundary domain.SlotBoundaryPolicy) *Calculator {
	if boundary == "" {
		boundary = domain.DefaultSlotBoundary
	}
	return &Calculator{boundary: boundary}
}

// ComputeFreeSlots возвращает упорядоченный список времен начала свободных слотов ("HH:MM") на дату date.
//
// - window == nil (доступность не объявлена) → пустой список без ошибки
// - некорректные FromTime/TillTime → ErrConfiguration
// - слоты генерируются от FromTime с шагом durationMinutes, пока начало слота строго раньше TillTime
// - остаются слоты, начинающиеся строго после now и не пересекающиеся ни с одним занятым интервалом
//
// durationMinutes должен быть положительным, это проверяет вызывающая сторона.
func (c *Calculator) ComputeFreeSlots(
	window *domain.WorkingHoursWindow,
	busy []domain.BusyInterval,
	date time.Time,
	durationMinutes int,
	now time.Time,
) ([]types.TimeString, error) {
	if window == nil {
		return []types.TimeString{}, nil
	}

	fromTime, err := types.NewTimeStringFromString(window.FromTime)
	if err != nil {
		return nil, fmt.Errorf("%w: fromTime of %s: %v", ErrConfiguration, window.Day, err)
	}
	tillTime, err := types.NewTimeStringFromString(window.TillTime)
	if err != nil {
		return nil, fmt.Errorf("%w: tillTime of %s: %v", ErrConfiguration, window.Day, err)
	}

	if durationMinutes <= 0 {
		return []types.TimeString{}, nil
	}
	duration := time.Duration(durationMinutes) * time.Minute

	// Шаг 1: привязываем рабочие часы к дате
	availableFrom := fromTime.On(date)
	availableTill := tillTime.On(date)

	// Шаг 2: генерируем кандидатов
	candidates := c.generateCandidates(availableFrom, availableTill, duration)

	// Шаг 3: фильтруем прошедшие и занятые
	freeSlots := make([]types.TimeString, 0, len(candidates))
	for _, start := range candidates {
		if !start.After(now) {
			continue
		}
		if overlapsAny(start, start.Add(duration), busy) {
			continue
		}
		freeSlots = append(freeSlots, types.NewTimeString(start))
	}

	return freeSlots, nil
}

// generateCandidates генерирует начала слотов от from с шагом step, пока начало строго раньше till.
// При BoundaryStrict генерация останавливается и на первом слоте, который закончился бы после till.
func (c *Calculator) generateCandidates(from, till time.Time, step time.Duration) []time.Time {
	candidates := make([]time.Time, 0)
	for current := from; current.Before(till); current = current.Add(step) {
		if c.boundary == domain.BoundaryStrict && current.Add(step).After(till) {
			break
		}
		candidates = append(candidates, current)
	}
	return candidates
}

func overlapsAny(start, end time.Time, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if overlaps(start, end, b) {
			return true
		}
	}
	return false
}

// overlaps проверяет пересечение слота [start, end) с занятым интервалом [b.Start, b.End).
// Пересечение есть, если выполняется хотя бы одно из условий:
//   - слот начинается внутри занятого интервала
//   - слот заканчивается внутри занятого интервала
//   - слот целиком накрывает занятый интервал
//
// Для непустых интервалов (Start < End) это эквивалентно max(start, b.Start) < min(end, b.End).
// Пустой интервал строго внутри слота этими условиями считается пересечением.
func overlaps(start, end time.Time, b domain.BusyInterval) bool {
	startsInside := !start.Before(b.Start) && start.Before(b.End)
	endsInside := end.After(b.Start) && !end.After(b.End)
	covers := start.Before(b.Start) && end.After(b.End)
	return startsInside || endsInside || covers
}
