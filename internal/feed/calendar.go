// Package feed serves today's salon schedule as an iCalendar file over a
// localhost HTTP endpoint, so the operator can subscribe to the day view
// from any calendar application.
package feed

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
)

// BuildCalendar renders a day's appointments as an iCalendar object. The
// event list mirrors the day roster one-to-one: the feed is a projection
// of backend data, never a source of truth.
func BuildCalendar(appointments []booking.Appointment, now time.Time) ([]byte, error) {
	if len(appointments) == 0 {
		// A valid but empty VCALENDAR keeps subscribed clients from
		// flagging the feed as broken on a quiet day.
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Local wall clock drives the booking logic; UTC is only for stamping.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, appt := range appointments {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(appt))

		summary := fmt.Sprintf(config.FormatFeedSummary, appt.Service, appt.Customer.FullName())
		event.Props.SetText(config.PropSummary, summary)
		if appt.Notes != "" {
			event.Props.SetText(config.PropDescription, appt.Notes)
		}

		startProp := ical.NewProp(config.PropDTStart)
		startProp.SetDateTime(appt.StartsAt)
		event.Props.Set(startProp)

		endProp := ical.NewProp(config.PropDTEnd)
		endProp.SetDateTime(appt.StartsAt.Add(config.SlotInterval))
		event.Props.Set(endProp)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// eventUID derives a stable identifier from the slot and customer, so a
// re-served feed updates events in place instead of duplicating them.
func eventUID(appt booking.Appointment) string {
	input := fmt.Sprintf(config.FormatHashInput,
		appt.Customer.FullName(),
		appt.StartsAt.Format(time.RFC3339),
		config.UIDSalt,
	)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
