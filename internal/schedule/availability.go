package schedule

import "time"

// Availability maps a stylist name to the instants at which that stylist
// can be booked. It is supplied by the backend on every refresh and never
// mutated here.
type Availability map[string][]time.Time

// Stylist describes one member of the salon roster and the services they
// offer, in the order the salon wants them listed.
type Stylist struct {
	Name     string
	Services []string
}

// Sheet bundles the roster and availability data the appointment form
// needs, as returned by one backend refresh.
type Sheet struct {
	Stylists     []Stylist
	Availability Availability
}

// IsAvailable reports whether the given stylist can be booked at exactly
// the candidate instant. Matching is strict instant equality: the grid and
// the backend both carry millisecond precision, and a near-miss is a
// different slot, not a rounding artifact. An unknown stylist is simply
// not available.
func IsAvailable(av Availability, stylist string, candidate time.Time) bool {
	for _, t := range av[stylist] {
		if t.Equal(candidate) {
			return true
		}
	}
	return false
}

// StylistByName looks up a roster entry. The second return value reports
// whether a stylist with that name exists.
func StylistByName(roster []Stylist, name string) (Stylist, bool) {
	for _, s := range roster {
		if s.Name == name {
			return s, true
		}
	}
	return Stylist{}, false
}

// ServicesFor returns the matched stylist's service list, or an empty
// slice when the roster has no such stylist. Falling back to the salon's
// global list is the caller's policy, not this package's.
func ServicesFor(roster []Stylist, name string) []string {
	if s, ok := StylistByName(roster, name); ok {
		return s.Services
	}
	return nil
}
