package domain

// EventType is a bookable meeting kind published on a person's booking page
type EventType struct {
	ID              int64
	URL             string
	Title           string
	DurationMinutes int
	Active          bool
}
