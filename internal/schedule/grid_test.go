package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/salon-desk/internal/config"
)

func TestDailySlots_HalfHourBoundaries(t *testing.T) {
	anchor := time.Date(2018, 12, 1, 14, 37, 12, 0, time.Local)

	slots, err := DailySlots(anchor, 9, 11)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = FormatTimeOfDay(s)
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, labels)

	// Consecutive slots are exactly one interval apart.
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, config.SlotInterval, slots[i].Sub(slots[i-1]))
	}

	// Slots live on the anchor's calendar date regardless of the anchor's
	// own clock time.
	for _, s := range slots {
		y, m, d := s.Date()
		ay, am, ad := anchor.Date()
		assert.Equal(t, ay, y)
		assert.Equal(t, am, m)
		assert.Equal(t, ad, d)
	}
}

func TestDailySlots_FullDefaultDay(t *testing.T) {
	anchor := time.Date(2019, 6, 3, 8, 0, 0, 0, time.Local)

	slots, err := DailySlots(anchor, config.DefaultOpensAt, config.DefaultClosesAt)
	require.NoError(t, err)

	assert.Len(t, slots, (config.DefaultClosesAt-config.DefaultOpensAt)*config.SlotsPerHour)
	assert.Equal(t, "09:00", FormatTimeOfDay(slots[0]))
	assert.Equal(t, "18:30", FormatTimeOfDay(slots[len(slots)-1]))
}

func TestDailySlots_RejectsInvalidHours(t *testing.T) {
	anchor := time.Date(2019, 6, 3, 8, 0, 0, 0, time.Local)

	tests := []struct {
		desc    string
		opensAt int
		closes  int
	}{
		{desc: "closes before opens", opensAt: 18, closes: 9},
		{desc: "closes equals opens", opensAt: 9, closes: 9},
		{desc: "negative opening hour", opensAt: -1, closes: 9},
		{desc: "closing past midnight", opensAt: 9, closes: 25},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			slots, err := DailySlots(anchor, tt.opensAt, tt.closes)
			assert.Nil(t, slots)
			assert.ErrorIs(t, err, ErrInvalidHours)
		})
	}
}

func TestWeeklyDates_RollingWindow(t *testing.T) {
	anchor := time.Date(2018, 12, 1, 14, 37, 12, 0, time.Local)

	dates := WeeklyDates(anchor)
	require.Len(t, dates, config.WeekDays)

	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = FormatShortDate(d)
	}
	assert.Equal(t, []string{"Sat 01", "Sun 02", "Mon 03", "Tue 04", "Wed 05", "Thu 06", "Fri 07"}, labels)

	for _, d := range dates {
		assert.Equal(t, 0, d.Hour())
		assert.Equal(t, 0, d.Minute())
	}
}

func TestWeeklyDates_CrossesMonthBoundary(t *testing.T) {
	anchor := time.Date(2019, 1, 30, 9, 0, 0, 0, time.Local)

	dates := WeeklyDates(anchor)
	require.Len(t, dates, config.WeekDays)

	assert.Equal(t, time.January, dates[0].Month())
	assert.Equal(t, time.February, dates[config.WeekDays-1].Month())
	assert.Equal(t, 5, dates[config.WeekDays-1].Day())
}

func TestCombineDateAndTime(t *testing.T) {
	date := time.Date(2018, 12, 3, 0, 0, 0, 0, time.Local)
	slot := time.Date(2018, 12, 1, 10, 30, 0, 0, time.Local)

	combined := CombineDateAndTime(date, slot)

	assert.Equal(t, time.Date(2018, 12, 3, 10, 30, 0, 0, time.Local), combined)
}
