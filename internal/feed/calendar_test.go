package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
)

func sampleAppointments() []booking.Appointment {
	base := time.Date(2018, 12, 1, 9, 0, 0, 0, time.UTC)
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
	}
}

func TestBuildCalendar_EmptyDayServesStub(t *testing.T) {
	now := time.Date(2018, 12, 1, 8, 0, 0, 0, time.UTC)

	data, err := BuildCalendar(nil, now)
	require.NoError(t, err)

	assert.Equal(t, []byte(config.StubVCalendar), data)
}

func TestBuildCalendar_OneEventPerAppointment(t *testing.T) {
	now := time.Date(2018, 12, 1, 8, 0, 0, 0, time.UTC)

	data, err := BuildCalendar(sampleAppointments(), now)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "END:VCALENDAR")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Contains(t, ics, "Cut: Ashley Jones")
	assert.Contains(t, ics, "Blow-dry: Jordan Smith")
	assert.Contains(t, ics, "first visit")
}

func TestBuildCalendar_StableUIDs(t *testing.T) {
	now := time.Date(2018, 12, 1, 8, 0, 0, 0, time.UTC)
	appointments := sampleAppointments()

	first, err := BuildCalendar(appointments, now)
	require.NoError(t, err)

	// A later refresh of the same day must reuse identifiers so calendar
	// clients update events in place.
	second, err := BuildCalendar(appointments, now.Add(time.Hour))
	require.NoError(t, err)

	assert.ElementsMatch(t, extractLines(string(first), "UID:"), extractLines(string(second), "UID:"))
}

func TestEventUID_DistinguishesCustomers(t *testing.T) {
	appointments := sampleAppointments()

	uid0 := eventUID(appointments[0])
	uid1 := eventUID(appointments[1])

	assert.NotEqual(t, uid0, uid1)
	assert.Contains(t, uid0, "@"+config.ICalDomain)
}

func extractLines(s, prefix string) []string {
	var out []string
	for _, line := range strings.Split(s, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			out = append(out, line)
		}
	}
	return out
}
