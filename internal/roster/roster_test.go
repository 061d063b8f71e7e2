package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/salon-desk/internal/booking"
)

func sampleDay() []booking.Appointment {
	base := time.Date(2018, 12, 1, 9, 0, 0, 0, time.Local)
	return []booking.Appointment{
		{
			StartsAt: base,
			Customer: booking.CustomerDraft{FirstName: "Ashley", LastName: "Jones"},
			Stylist:  "Pepe",
			Service:  "Cut",
		},
		{
			StartsAt: base.Add(30 * time.Minute),
			Customer: booking.CustomerDraft{FirstName: "Jordan", LastName: "Smith"},
			Stylist:  "Paco",
			Service:  "Blow-dry",
			Notes:    "first visit",
		},
		{
			StartsAt: base.Add(time.Hour),
			Customer: booking.CustomerDraft{FirstName: "Sam", LastName: "Lee"},
			Stylist:  "Pepe",
			Service:  "Beard trim",
		},
	}
}

func TestNew_StartsAtFirstAppointment(t *testing.T) {
	r := New(sampleDay())

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 0, r.SelectedIndex())

	selected, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, "Ashley Jones", selected.Customer.FullName())
}

func TestNew_EmptyDayHasNoSelection(t *testing.T) {
	for _, appointments := range [][]booking.Appointment{nil, {}} {
		r := New(appointments)

		assert.Equal(t, 0, r.Len())
		assert.Equal(t, NoSelection, r.SelectedIndex())

		_, ok := r.Selected()
		assert.False(t, ok)
	}
}

func TestSelect_MovesCursor(t *testing.T) {
	r := New(sampleDay())

	assert.True(t, r.Select(2))
	assert.Equal(t, 2, r.SelectedIndex())

	selected, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, "Beard trim", selected.Service)
}

func TestSelect_OutOfRangeIsIgnored(t *testing.T) {
	r := New(sampleDay())
	require.True(t, r.Select(1))

	tests := []struct {
		desc  string
		index int
	}{
		{desc: "negative", index: -1},
		{desc: "past the end", index: 3},
		{desc: "far past the end", index: 99},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.False(t, r.Select(tt.index))
			// The previous selection survives the rejected move.
			assert.Equal(t, 1, r.SelectedIndex())
		})
	}
}

func TestAppointments_PreservesBackendOrder(t *testing.T) {
	// The backend decides the roster order; the client must not re-sort.
	day := sampleDay()
	day[0], day[2] = day[2], day[0]

	r := New(day)

	got := r.Appointments()
	require.Len(t, got, 3)
	assert.Equal(t, "Sam Lee", got[0].Customer.FullName())
	assert.Equal(t, "Ashley Jones", got[2].Customer.FullName())
}
