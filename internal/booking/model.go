package booking

import "time"

// CustomerDraft is the in-progress customer record the intake form edits.
// It is a value type: field setters return a new draft and never touch
// their receiver, so a form can hold one draft per render without sharing.
type CustomerDraft struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// WithFirstName returns a copy of the draft with the first name replaced.
func (d CustomerDraft) WithFirstName(v string) CustomerDraft {
	d.FirstName = v
	return d
}

// WithLastName returns a copy of the draft with the last name replaced.
func (d CustomerDraft) WithLastName(v string) CustomerDraft {
	d.LastName = v
	return d
}

// WithPhoneNumber returns a copy of the draft with the phone number replaced.
func (d CustomerDraft) WithPhoneNumber(v string) CustomerDraft {
	d.PhoneNumber = v
	return d
}

// FullName is the display form used by the day view and the feed.
func (d CustomerDraft) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	default:
		return d.FirstName + " " + d.LastName
	}
}

// Customer is a persisted customer: the draft fields plus the identity
// the backend assigned on creation. Only a successful POST /customers
// response produces one.
type Customer struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
}

// FullName is the display form used when the appointment step shows who
// the booking is for.
func (c Customer) FullName() string {
	return CustomerDraft{FirstName: c.FirstName, LastName: c.LastName}.FullName()
}

// Appointment is one confirmed booking as reported by the backend. The
// client only displays and re-serves these; it never constructs or edits
// them.
type Appointment struct {
	StartsAt time.Time
	Customer CustomerDraft
	Stylist  string
	Service  string
	Notes    string
}
