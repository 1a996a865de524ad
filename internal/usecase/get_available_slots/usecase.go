package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/eventtype"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// UseCase use case для получения свободных слотов для бронирования встречи
type UseCase struct {
	provider           AvailabilityProvider
	calculator         SlotCalculator
	eventTypeRepo      EventTypeRepository
	observer           SlotsObserver
	timeProvider       TimeProvider
	maxDurationMinutes int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case.
// observer может быть nil, если метрики выключены.
func NewUseCase(
	provider AvailabilityProvider,
	calculator SlotCalculator,
	eventTypeRepo EventTypeRepository,
	observer SlotsObserver,
	maxDurationMinutes int,
	logger Logger,
) *UseCase {
	if maxDurationMinutes <= 0 {
		maxDurationMinutes = domain.DefaultMaxDurationMinutes
	}
	return &UseCase{
		provider:           provider,
		calculator:         calculator,
		eventTypeRepo:      eventTypeRepo,
		observer:           observer,
		timeProvider:       &RealTimeProvider{},
		maxDurationMinutes: maxDurationMinutes,
		logger:             logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, date=%s, duration=%d, eventType=%q",
		req.Username, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.EventTypeURL)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxDurationMinutes); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность встречи
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Фиксируем текущее время один раз на весь расчет
	now := uc.timeProvider.Now()

	// 4. Получаем рабочие часы и занятые интервалы
	snapshot, err := uc.provider.GetAvailability(ctx, req.Username, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability for user=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	response := &Response{
		Date:            req.Date,
		Username:        req.Username,
		DurationMinutes: duration,
		Slots:           []types.TimeString{},
	}

	// 5. Рабочие часы не объявлены - слотов нет
	if !snapshot.HasWindow() {
		uc.logger.Info("GetAvailableSlots: user=%s has no availability on %s",
			req.Username, domain.WeekdayOf(req.Date))
		response.NoAvailability = true
		uc.observe("no_availability", 0)
		return response, nil
	}

	// 6. Вычисляем свободные слоты
	slots, err := uc.calculator.ComputeFreeSlots(snapshot.Window, snapshot.Busy, req.Date, duration, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: corrupt working hours id=%d for user=%s: %v",
			snapshot.Window.ID, req.Username, err)
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	response.Slots = slots

	if len(slots) == 0 {
		uc.observe("empty", 0)
	} else {
		uc.observe("slots", len(slots))
	}

	uc.logger.Info("GetAvailableSlots: found %d free slots for user=%s, date=%s, busy=%d",
		len(slots), req.Username, req.Date.Format(domain.DateFormat), len(snapshot.Busy))

	return response, nil
}

// resolveDuration возвращает длительность из запроса или из типа встречи
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.DurationMinutes != 0 {
		return req.DurationMinutes, nil
	}

	eventType, err := uc.eventTypeRepo.GetByUsernameAndURL(ctx, req.Username, req.EventTypeURL)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: event type %q of user=%s not found", req.EventTypeURL, req.Username)
			return 0, ErrEventTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get event type %q: %v", req.EventTypeURL, err)
		return 0, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	if !eventType.Active {
		uc.logger.Warn("GetAvailableSlots: event type id=%d is inactive", eventType.ID)
		return 0, ErrEventTypeNotFound
	}

	if err := validateDuration(eventType.DurationMinutes, uc.maxDurationMinutes); err != nil {
		uc.logger.Error("GetAvailableSlots: event type id=%d has invalid duration: %v", eventType.ID, err)
		return 0, err
	}

	return eventType.DurationMinutes, nil
}

func (uc *UseCase) observe(result string, count int) {
	if uc.observer != nil {
		uc.observer.ObserveSlots(result, count)
	}
}
