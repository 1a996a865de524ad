package domain

import "time"

// BusyInterval is one confirmed meeting, [Start, End)
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Clip trims the interval to [from, till]. ok is false when nothing remains.
func (b BusyInterval) Clip(from, till time.Time) (BusyInterval, bool) {
	start, end := b.Start, b.End
	if start.Before(from) {
		start = from
	}
	if end.After(till) {
		end = till
	}
	if !start.Before(end) {
		return BusyInterval{}, false
	}
	return BusyInterval{Start: start, End: end}, true
}

// BusyIntervalsFilter фильтр встреч пользователя за период
type BusyIntervalsFilter struct {
	Username string
	From     time.Time // начало дня (включительно)
	Till     time.Time // конец дня (включительно)

	// IncludePartial включает встречи, лишь частично попадающие в [From, Till].
	// По умолчанию берутся только встречи, целиком лежащие внутри периода.
	IncludePartial bool
}
