package schedule

import (
	"fmt"
	"time"

	"github.com/tartampluch/salon-desk/internal/config"
)

// ErrInvalidHours reports an opening-hours configuration where the salon
// would close before it opens. The grid fails fast instead of silently
// producing an empty table.
var ErrInvalidHours = fmt.Errorf(config.ErrHoursRange)

// DailySlots returns one instant per half-hour boundary on the anchor's
// calendar date, from opensAt:00 inclusive up to (but not including)
// closesAt:00, in the anchor's location. The salon operates on its local
// wall clock, so no UTC normalization is applied.
func DailySlots(anchor time.Time, opensAt, closesAt int) ([]time.Time, error) {
	if opensAt < config.HourOfDayMin || closesAt > config.HourOfDayMax || closesAt <= opensAt {
		return nil, fmt.Errorf("%w: opens %d, closes %d", ErrInvalidHours, opensAt, closesAt)
	}

	total := (closesAt - opensAt) * config.SlotsPerHour
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), opensAt, 0, 0, 0, anchor.Location())

	slots := make([]time.Time, total)
	for i := range slots {
		slots[i] = start.Add(time.Duration(i) * config.SlotInterval)
	}
	return slots, nil
}

// WeeklyDates returns exactly 7 consecutive midnights starting at the
// anchor's midnight. Whatever weekday the anchor falls on is bucket 0.
func WeeklyDates(anchor time.Time) []time.Time {
	midnight := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	dates := make([]time.Time, config.WeekDays)
	for i := range dates {
		// AddDate handles month and DST boundaries; midnight stays midnight.
		dates[i] = midnight.AddDate(0, 0, i)
	}
	return dates
}

// CombineDateAndTime maps a (day, time-of-day) grid cell to a concrete
// instant: the calendar date of date with the clock time of slot.
func CombineDateAndTime(date, slot time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		slot.Hour(), slot.Minute(), slot.Second(), slot.Nanosecond(),
		date.Location(),
	)
}

// FormatTimeOfDay renders an instant as a zero-padded 24-hour "HH:MM" label.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(config.TimeOfDayLayout)
}

// FormatShortDate renders an instant as a "Www DD" column header.
func FormatShortDate(t time.Time) string {
	return t.Format(config.ShortDateLayout)
}
