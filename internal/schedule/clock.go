package schedule

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It supplies the "today" anchor for the slot grid and the day view.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
