package booking

import (
	"time"

	"github.com/tartampluch/salon-desk/internal/schedule"
)

// AppointmentDraft is the in-progress booking the appointment form edits.
// Like CustomerDraft it is an immutable value: each setter replaces one
// field and leaves the rest untouched. No validation happens here; the
// backend's response is the only arbiter of a valid booking.
type AppointmentDraft struct {
	Stylist  string
	Service  string
	StartsAt time.Time // zero value means no slot chosen yet
}

// WithStylist returns a copy of the draft with the stylist replaced.
func (d AppointmentDraft) WithStylist(v string) AppointmentDraft {
	d.Stylist = v
	return d
}

// WithService returns a copy of the draft with the service replaced.
func (d AppointmentDraft) WithService(v string) AppointmentDraft {
	d.Service = v
	return d
}

// WithStartsAt returns a copy of the draft with the time slot replaced.
func (d AppointmentDraft) WithStartsAt(t time.Time) AppointmentDraft {
	d.StartsAt = t
	return d
}

// HasSlot reports whether a time slot has been chosen.
func (d AppointmentDraft) HasSlot() bool {
	return !d.StartsAt.IsZero()
}

// SelectableServices applies the field-interdependency rule: choosing a
// stylist narrows the service list to that stylist's own services, and
// clearing the choice (or naming an unknown stylist) widens it back to
// the salon-wide list.
func SelectableServices(roster []schedule.Stylist, global []string, d AppointmentDraft) []string {
	if d.Stylist != "" {
		if s, ok := schedule.StylistByName(roster, d.Stylist); ok {
			return s.Services
		}
	}
	return global
}
