package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
)

// buildDayView renders today's roster with a detail pane and the entry point
// into the booking flow.
func (app *SalonApp) buildDayView() fyne.CanvasObject {
	app.DataMut.RLock()
	dayRoster := app.Roster
	app.DataMut.RUnlock()

	addButton := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), func() {
		if !app.Flow.RequestAdd() {
			return
		}
		app.customerDraft = booking.CustomerDraft{}
		app.appointmentDraft = booking.AppointmentDraft{}
		app.RenderStage()
	})

	title := widget.NewLabelWithStyle(
		fmt.Sprintf(config.FormatDayTitle,
			app.GetMsg(config.TKeyLblTodaysAppts),
			app.Clock.Now().Format(config.QueryDateLayout)),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	header := container.NewBorder(nil, nil, title, addButton)

	if dayRoster == nil || dayRoster.Len() == 0 {
		empty := widget.NewLabel(app.GetMsg(config.TKeyNoAppointments))
		empty.Alignment = fyne.TextAlignCenter
		return container.NewBorder(header, nil, nil, nil, container.NewCenter(empty))
	}

	detail := widget.NewLabel("")
	detail.Wrapping = fyne.TextWrapWord

	updateDetail := func() {
		appt, ok := dayRoster.Selected()
		if !ok {
			detail.SetText("")
			return
		}
		detail.SetText(app.formatDetail(appt))
	}

	list := widget.NewList(
		func() int {
			return dayRoster.Len()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			items := dayRoster.Appointments()
			if id >= len(items) {
				return
			}
			appt := items[id]
			o.(*widget.Label).SetText(fmt.Sprintf(config.FormatRosterLine,
				appt.StartsAt.Format(config.TimeOfDayLayout),
				appt.Customer.FullName(),
				appt.Service))
		},
	)

	list.OnSelected = func(id widget.ListItemID) {
		if !dayRoster.Select(id) {
			slog.Debug(config.MsgSelectIgnored,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyIndex, id)
			return
		}
		updateDetail()
	}

	if idx := dayRoster.SelectedIndex(); idx >= 0 {
		list.Select(idx)
	}
	updateDetail()

	split := container.NewHSplit(list, container.NewVScroll(detail))
	split.SetOffset(config.DaySplitOffset)

	return container.NewBorder(header, nil, nil, nil, split)
}

// formatDetail renders the selected appointment for the detail pane.
func (app *SalonApp) formatDetail(appt booking.Appointment) string {
	text := fmt.Sprintf(config.FormatDetailHeader,
		appt.StartsAt.Format(config.DetailTimeLayout),
		app.GetMsg(config.TKeyLblService), appt.Service,
		app.GetMsg(config.TKeyLblStylist), appt.Stylist,
		app.GetMsg(config.TKeyLblCustomer), appt.Customer.FullName(),
		app.GetMsg(config.TKeyLblPhone), appt.Customer.PhoneNumber,
	)
	if appt.Notes != "" {
		text += fmt.Sprintf(config.FormatDetailNotes, app.GetMsg(config.TKeyLblNotes), appt.Notes)
	}
	return text
}
