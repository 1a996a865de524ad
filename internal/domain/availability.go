package domain

import "time"

// Weekday is the English day name as stored in the availability table ("Monday".."Sunday")
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekdayOf returns the weekday of date in date's location
func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday().String())
}

// WorkingHoursWindow is the declared from/till window of a person for one weekday.
// FromTime and TillTime are kept as stored ("HH:MM") and parsed by the slot calculator.
type WorkingHoursWindow struct {
	ID       int64
	Day      Weekday
	FromTime string
	TillTime string
}

// AvailabilitySnapshot is everything the slot calculator needs for one date.
// Window is nil when the person declared no availability for the weekday.
type AvailabilitySnapshot struct {
	Window *WorkingHoursWindow
	Busy   []BusyInterval
}

// HasWindow reports whether a working-hours window is declared
func (s *AvailabilitySnapshot) HasWindow() bool {
	return s != nil && s.Window != nil
}

// DayBounds returns 00:00:00.000 and 23:59:59.999 of date's calendar day in date's location
func DayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	endOfDay := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), date.Location())
	return startOfDay, endOfDay
}
