// Package roster presents one day's confirmed appointments: the list in
// the order the backend supplied it, plus a cursor for the appointment
// whose details the day view is currently showing.
package roster

import "github.com/tartampluch/salon-desk/internal/booking"

// NoSelection is the cursor value when the day has no appointments.
const NoSelection = -1

// Roster is a read-only view over a day's appointments. It never sorts:
// the backend returns the list ordered by start time and reordering here
// would desynchronize the cursor from what the operator clicked.
type Roster struct {
	appointments []booking.Appointment
	selected     int
}

// New builds a roster over the given appointments. The cursor starts on
// the first appointment, or nowhere when the day is empty.
func New(appointments []booking.Appointment) *Roster {
	r := &Roster{appointments: appointments, selected: NoSelection}
	if len(appointments) > 0 {
		r.selected = 0
	}
	return r
}

// Appointments returns the day's appointments in backend order.
func (r *Roster) Appointments() []booking.Appointment {
	return r.appointments
}

// Len returns the number of appointments.
func (r *Roster) Len() int {
	return len(r.appointments)
}

// Select moves the cursor to index i. Out-of-range indexes are ignored
// and reported false; the UI only ever passes the index of a rendered
// row, so a rejection indicates a caller bug rather than user input.
func (r *Roster) Select(i int) bool {
	if i < 0 || i >= len(r.appointments) {
		return false
	}
	r.selected = i
	return true
}

// SelectedIndex returns the cursor, or NoSelection for an empty day.
func (r *Roster) SelectedIndex() int {
	return r.selected
}

// Selected returns the appointment under the cursor. The second return
// value is false when the day is empty.
func (r *Roster) Selected() (booking.Appointment, bool) {
	if r.selected == NoSelection {
		return booking.Appointment{}, false
	}
	return r.appointments[r.selected], true
}
