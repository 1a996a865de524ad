package domain

// SlotBoundaryPolicy controls how the last generated slot is bounded by the closing time
type SlotBoundaryPolicy string

const (
	// BoundaryLenient only requires a slot to start before the closing time;
	// the last slot may end after it.
	BoundaryLenient SlotBoundaryPolicy = "lenient"
	// BoundaryStrict additionally requires a slot to end no later than the closing time.
	BoundaryStrict SlotBoundaryPolicy = "strict"
)

// BusyIntervalPolicy controls which meetings count as busy for a date
type BusyIntervalPolicy string

const (
	// BusyContained keeps only meetings that lie entirely within the day.
	BusyContained BusyIntervalPolicy = "contained"
	// BusyClipped keeps every meeting touching the day, clipped to the day bounds.
	BusyClipped BusyIntervalPolicy = "clipped"
)

// Default configuration values
const (
	DefaultSlotBoundary       = BoundaryLenient
	DefaultBusyIntervalPolicy = BusyContained
	DefaultMaxDurationMinutes = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
