package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
	"github.com/tartampluch/salon-desk/internal/schedule"
)

// buildAppointmentForm renders the second step of the booking flow: service,
// stylist, and a week-wide grid of half-hour slots.
func (app *SalonApp) buildAppointmentForm() fyne.CanvasObject {
	app.DataMut.RLock()
	sheet := app.Sheet
	app.DataMut.RUnlock()

	title := widget.NewLabelWithStyle(
		app.GetMsg(config.TKeyTitleAddAppt),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	bookingFor := widget.NewLabel(app.GetMsgData(config.TKeyLblBookingFor,
		map[string]interface{}{"Name": app.Flow.Customer().FullName()}, 0))

	errorLabel := widget.NewLabel(app.localizedSaveError())
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hidden = !app.Flow.SaveFailed()

	now := app.Clock.Now()
	opens, closes := app.openingHours()

	slots, err := schedule.DailySlots(now, opens, closes)
	if err != nil {
		slog.Warn(config.ErrHoursRange,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		slots, _ = schedule.DailySlots(now, config.DefaultOpensAt, config.DefaultClosesAt)
	}
	days := schedule.WeeklyDates(now)

	var grid *widget.Table

	serviceSelect := widget.NewSelect(
		booking.SelectableServices(sheet.Stylists, config.DefaultServices, app.appointmentDraft),
		func(v string) {
			app.appointmentDraft = app.appointmentDraft.WithService(v)
		},
	)
	if app.appointmentDraft.Service != "" {
		serviceSelect.SetSelected(app.appointmentDraft.Service)
	}

	stylistNames := make([]string, 0, len(sheet.Stylists))
	for _, s := range sheet.Stylists {
		stylistNames = append(stylistNames, s.Name)
	}

	stylistSelect := widget.NewSelect(stylistNames, func(v string) {
		app.appointmentDraft = app.appointmentDraft.WithStylist(v)

		// Narrow the service list to what this stylist performs. A selection
		// that is no longer offered gets cleared.
		options := booking.SelectableServices(sheet.Stylists, config.DefaultServices, app.appointmentDraft)
		serviceSelect.Options = options
		if !containsString(options, app.appointmentDraft.Service) {
			app.appointmentDraft = app.appointmentDraft.WithService("")
			serviceSelect.ClearSelected()
		}
		serviceSelect.Refresh()

		if grid != nil {
			grid.Refresh()
		}
	})
	if app.appointmentDraft.Stylist != "" {
		stylistSelect.SetSelected(app.appointmentDraft.Stylist)
	}

	grid = widget.NewTable(
		func() (int, int) {
			return len(slots), config.WeekDays
		},
		func() fyne.CanvasObject {
			return widget.NewButton(config.SlotMarkTaken, nil)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			btn := o.(*widget.Button)
			if id.Row >= len(slots) || id.Col >= len(days) {
				return
			}

			candidate := schedule.CombineDateAndTime(days[id.Col], slots[id.Row])

			switch {
			case app.appointmentDraft.HasSlot() && candidate.Equal(app.appointmentDraft.StartsAt):
				btn.SetText(config.SlotMarkSelected)
				btn.Enable()
			case schedule.IsAvailable(sheet.Availability, app.appointmentDraft.Stylist, candidate):
				btn.SetText(config.SlotMarkFree)
				btn.Enable()
			default:
				btn.SetText(config.SlotMarkTaken)
				btn.Disable()
			}

			btn.OnTapped = func() {
				app.appointmentDraft = app.appointmentDraft.WithStartsAt(candidate)
				errorLabel.Hide()
				grid.Refresh()
			}
		},
	)

	grid.ShowHeaderRow = true
	grid.ShowHeaderColumn = true
	grid.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle(config.TablePlaceholder, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	}
	grid.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		switch {
		case id.Row == -1 && id.Col == -1:
			label.SetText("")
		case id.Row == -1:
			label.SetText(schedule.FormatShortDate(days[id.Col]))
		default:
			label.SetText(schedule.FormatTimeOfDay(slots[id.Row]))
		}
	}
	for col := 0; col < config.WeekDays; col++ {
		grid.SetColumnWidth(col, config.SlotColumnWidth)
	}

	var bookButton *widget.Button
	bookButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnBook), theme.ConfirmIcon(), func() {
		if !app.appointmentDraft.HasSlot() {
			errorLabel.SetText(app.GetMsg(config.TKeyErrNoSlot))
			errorLabel.Show()
			return
		}

		bookButton.Disable()
		go func() {
			defer bookButton.Enable()
			if err := app.Flow.SubmitAppointment(app.Ctx, app.appointmentDraft); err != nil {
				slog.Error(config.ErrSaveStatus,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err)
				app.RenderStage()
				return
			}

			app.App.SendNotification(fyne.NewNotification(
				config.AppName, app.GetMsg(config.TKeyNotifBooked)))
			app.RenderStage()
			app.performRefresh(false)
		}()
	})
	bookButton.Importance = widget.HighImportance

	cancelButton := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() {
		app.Flow.Cancel()
		app.RenderStage()
	})

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblStylist), stylistSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblService), serviceSelect),
	)

	top := container.NewVBox(title, bookingFor, form)
	bottom := container.NewVBox(errorLabel, container.NewHBox(cancelButton, bookButton))

	return container.NewBorder(top, bottom, nil, nil, grid)
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
