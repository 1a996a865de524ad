package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	windowRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/availability"
)

// Provider читает рабочие часы и занятые интервалы пользователя на дату.
// Ничего не вычисляет и не кеширует.
type Provider struct {
	windowRepo  WindowRepository
	meetingRepo MeetingRepository
	busyPolicy  domain.BusyIntervalPolicy
	logger      Logger
}

// NewProvider создает новый экземпляр провайдера.
// Пустая политика означает domain.BusyContained.
func NewProvider(
	windowRepo WindowRepository,
	meetingRepo MeetingRepository,
	busyPolicy domain.BusyIntervalPolicy,
	logger Logger,
) *Provider {
	if busyPolicy == "" {
		busyPolicy = domain.DefaultBusyIntervalPolicy
	}
	return &Provider{
		windowRepo:  windowRepo,
		meetingRepo: meetingRepo,
		busyPolicy:  busyPolicy,
		logger:      logger,
	}
}

// GetAvailability получает снимок доступности пользователя на дату date.
//
// Рабочие часы и встречи запрашиваются параллельно; ошибка одного запроса отменяет другой.
// Отсутствие рабочих часов не ошибка: Window в снимке будет nil.
// Ошибки хранилища возвращаются обернутыми в ErrDataUnavailable (исходная ошибка сохраняется в цепочке).
func (p *Provider) GetAvailability(ctx context.Context, username string, date time.Time) (*domain.AvailabilitySnapshot, error) {
	day := domain.WeekdayOf(date)
	startOfDay, endOfDay := domain.DayBounds(date)

	var (
		window *domain.WorkingHoursWindow
		busy   []domain.BusyInterval
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w, err := p.windowRepo.GetByUsernameAndDay(gctx, username, day)
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get working hours: %w", err)
		}
		window = w
		return nil
	})

	g.Go(func() error {
		intervals, err := p.meetingRepo.GetBusyIntervals(gctx, domain.BusyIntervalsFilter{
			Username:       username,
			From:           startOfDay,
			Till:           endOfDay,
			IncludePartial: p.busyPolicy == domain.BusyClipped,
		})
		if err != nil {
			return fmt.Errorf("get busy intervals: %w", err)
		}
		busy = intervals
		return nil
	})

	if err := g.Wait(); err != nil {
		p.logger.Error("GetAvailability: user=%s, date=%s: %v", username, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	if p.busyPolicy == domain.BusyClipped {
		busy = clipIntervals(busy, startOfDay, endOfDay)
	}

	if window == nil {
		p.logger.Info("GetAvailability: user=%s has no working hours on %s", username, day)
	}

	return &domain.AvailabilitySnapshot{
		Window: window,
		Busy:   busy,
	}, nil
}

func clipIntervals(intervals []domain.BusyInterval, from, till time.Time) []domain.BusyInterval {
	clipped := make([]domain.BusyInterval, 0, len(intervals))
	for _, interval := range intervals {
		if c, ok := interval.Clip(from, till); ok {
			clipped = append(clipped, c)
		}
	}
	return clipped
}
