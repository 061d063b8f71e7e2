package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
)

func TestFormatDetail(t *testing.T) {
	app := newTestApp(t, &stubBackend{})
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	appt := booking.Appointment{
		StartsAt: time.Date(2018, 12, 1, 9, 30, 0, 0, time.Local),
		Customer: booking.CustomerDraft{FirstName: "Ashley", LastName: "Jones", PhoneNumber: "613 555 0123"},
		Stylist:  "Pepe",
		Service:  "Cut",
	}

	text := app.formatDetail(appt)

	assert.Contains(t, text, "Sat 01 Dec, 09:30")
	assert.Contains(t, text, "Service: Cut")
	assert.Contains(t, text, "Stylist: Pepe")
	assert.Contains(t, text, "Customer: Ashley Jones")
	assert.Contains(t, text, "Phone: 613 555 0123")
	assert.NotContains(t, text, "Notes:")
}

func TestFormatDetail_WithNotes(t *testing.T) {
	app := newTestApp(t, &stubBackend{})
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	appt := booking.Appointment{
		StartsAt: time.Date(2018, 12, 1, 9, 30, 0, 0, time.Local),
		Customer: booking.CustomerDraft{FirstName: "Ashley"},
		Stylist:  "Pepe",
		Service:  "Cut",
		Notes:    "prefers scissors",
	}

	assert.Contains(t, app.formatDetail(appt), "Notes: prefers scissors")
}
