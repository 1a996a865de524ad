package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/eventtype"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
	"github.com/m04kA/SMC-CalendarService/internal/service/slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeProvider struct {
	snapshot *domain.AvailabilitySnapshot
	err      error
	calls    int
}

func (f *fakeProvider) GetAvailability(_ context.Context, _ string, _ time.Time) (*domain.AvailabilitySnapshot, error) {
	f.calls++
	return f.snapshot, f.err
}

type fakeEventTypes struct {
	eventType *domain.EventType
	err       error
}

func (f *fakeEventTypes) GetByUsernameAndURL(_ context.Context, _, _ string) (*domain.EventType, error) {
	return f.eventType, f.err
}

type recordingObserver struct {
	results []string
	counts  []int
}

func (o *recordingObserver) ObserveSlots(result string, count int) {
	o.results = append(o.results, result)
	o.counts = append(o.counts, count)
}

var monday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func newTestUseCase(provider AvailabilityProvider, eventTypes EventTypeRepository, observer SlotsObserver, now time.Time) *UseCase {
	uc := NewUseCase(provider, slots.NewCalculator(domain.BoundaryLenient), eventTypes, observer, 0, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func slotStrings(resp *Response) []string {
	result := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		result[i] = s.String()
	}
	return result
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	provider := &fakeProvider{snapshot: &domain.AvailabilitySnapshot{
		Window: &domain.WorkingHoursWindow{ID: 1, Day: domain.Monday, FromTime: "09:00", TillTime: "11:00"},
		Busy:   []domain.BusyInterval{{Start: monday.Add(9*time.Hour + 30*time.Minute), End: monday.Add(10 * time.Hour)}},
	}}
	observer := &recordingObserver{}
	uc := newTestUseCase(provider, &fakeEventTypes{}, observer, monday.Add(-time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, slotStrings(resp))
	assert.False(t, resp.NoAvailability)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, []string{"slots"}, observer.results)
	assert.Equal(t, []int{3}, observer.counts)
}

func TestExecute_NoWindow(t *testing.T) {
	provider := &fakeProvider{snapshot: &domain.AvailabilitySnapshot{Busy: []domain.BusyInterval{}}}
	observer := &recordingObserver{}
	uc := newTestUseCase(provider, &fakeEventTypes{}, observer, monday)

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, DurationMinutes: 30})

	require.NoError(t, err)
	assert.True(t, resp.NoAvailability)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, []string{"no_availability"}, observer.results)
}

func TestExecute_DurationFromEventType(t *testing.T) {
	provider := &fakeProvider{snapshot: &domain.AvailabilitySnapshot{
		Window: &domain.WorkingHoursWindow{Day: domain.Monday, FromTime: "09:00", TillTime: "10:30"},
	}}
	eventTypes := &fakeEventTypes{eventType: &domain.EventType{ID: 4, URL: "consult", DurationMinutes: 45, Active: true}}
	uc := newTestUseCase(provider, eventTypes, nil, monday)

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, EventTypeURL: "consult"})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, []string{"09:00", "09:45"}, slotStrings(resp))
}

func TestExecute_EventTypeErrors(t *testing.T) {
	tests := []struct {
		name       string
		eventTypes *fakeEventTypes
		wantErr    error
	}{
		{
			name:       "not found",
			eventTypes: &fakeEventTypes{err: eventTypeRepo.ErrEventTypeNotFound},
			wantErr:    ErrEventTypeNotFound,
		},
		{
			name:       "inactive",
			eventTypes: &fakeEventTypes{eventType: &domain.EventType{ID: 2, DurationMinutes: 30, Active: false}},
			wantErr:    ErrEventTypeNotFound,
		},
		{
			name:       "store failure",
			eventTypes: &fakeEventTypes{err: errors.New("connection refused")},
			wantErr:    ErrDataUnavailable,
		},
		{
			name:       "zero duration stored",
			eventTypes: &fakeEventTypes{eventType: &domain.EventType{ID: 3, DurationMinutes: 0, Active: true}},
			wantErr:    ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			uc := newTestUseCase(provider, tt.eventTypes, nil, monday)

			_, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, EventTypeURL: "x"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, provider.calls)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "empty username", req: &Request{Date: monday, DurationMinutes: 30}, wantErr: ErrInvalidInput},
		{name: "zero date", req: &Request{Username: "alice", DurationMinutes: 30}, wantErr: ErrInvalidInput},
		{name: "no duration and no event type", req: &Request{Username: "alice", Date: monday}, wantErr: ErrInvalidDuration},
		{name: "negative duration", req: &Request{Username: "alice", Date: monday, DurationMinutes: -15}, wantErr: ErrInvalidDuration},
		{name: "too long", req: &Request{Username: "alice", Date: monday, DurationMinutes: 24*60 + 1}, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			uc := newTestUseCase(provider, &fakeEventTypes{}, nil, monday)

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, provider.calls)
		})
	}
}

func TestExecute_DataUnavailable(t *testing.T) {
	storeErr := errors.New("connection refused")
	provider := &fakeProvider{err: errors.Join(availability.ErrDataUnavailable, storeErr)}
	uc := newTestUseCase(provider, &fakeEventTypes{}, nil, monday)

	_, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, DurationMinutes: 30})

	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.ErrorIs(t, err, availability.ErrDataUnavailable)
	assert.ErrorIs(t, err, storeErr)
}

func TestExecute_MalformedWindow(t *testing.T) {
	provider := &fakeProvider{snapshot: &domain.AvailabilitySnapshot{
		Window: &domain.WorkingHoursWindow{ID: 9, Day: domain.Monday, FromTime: "nine", TillTime: "17:00"},
	}}
	uc := newTestUseCase(provider, &fakeEventTypes{}, nil, monday)

	_, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, DurationMinutes: 30})

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, slots.ErrConfiguration)
}

func TestExecute_UsesInjectedClock(t *testing.T) {
	provider := &fakeProvider{snapshot: &domain.AvailabilitySnapshot{
		Window: &domain.WorkingHoursWindow{Day: domain.Monday, FromTime: "09:00", TillTime: "10:00"},
	}}
	uc := newTestUseCase(provider, &fakeEventTypes{}, nil, monday.Add(9*time.Hour+20*time.Minute))

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", Date: monday, DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:30"}, slotStrings(resp))
}
