package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
)

// buildCustomerForm renders the first step of the booking flow.
func (app *SalonApp) buildCustomerForm() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(
		app.GetMsg(config.TKeyTitleAddCustomer),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	firstEntry := widget.NewEntry()
	firstEntry.SetText(app.customerDraft.FirstName)
	firstEntry.OnChanged = func(v string) {
		app.customerDraft = app.customerDraft.WithFirstName(v)
	}

	lastEntry := widget.NewEntry()
	lastEntry.SetText(app.customerDraft.LastName)
	lastEntry.OnChanged = func(v string) {
		app.customerDraft = app.customerDraft.WithLastName(v)
	}

	phoneEntry := NewPhoneEntry()
	phoneEntry.SetText(app.customerDraft.PhoneNumber)
	phoneEntry.OnChanged = func(v string) {
		app.customerDraft = app.customerDraft.WithPhoneNumber(v)
	}

	errorLabel := widget.NewLabel(app.localizedSaveError())
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hidden = !app.Flow.SaveFailed()

	importButton := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImportVCard), theme.FolderOpenIcon(), func() {
		picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()

			draft, err := booking.ImportCustomer(reader)
			if err != nil {
				slog.Warn(config.ErrVCardParse,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err)
				dialog.ShowError(err, app.Window)
				return
			}

			// SetText triggers OnChanged, which keeps the draft in sync.
			firstEntry.SetText(draft.FirstName)
			lastEntry.SetText(draft.LastName)
			phoneEntry.SetText(draft.PhoneNumber)
		}, app.Window)
		picker.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
		picker.Show()
	})

	var addButton *widget.Button
	addButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAddCustomer), theme.ConfirmIcon(), func() {
		addButton.Disable()
		go func() {
			defer addButton.Enable()
			if err := app.Flow.SubmitCustomer(app.Ctx, app.customerDraft); err != nil {
				slog.Error(config.ErrSaveStatus,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err)
			}
			app.RenderStage()
		}()
	})
	addButton.Importance = widget.HighImportance

	cancelButton := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() {
		app.Flow.Cancel()
		app.RenderStage()
	})

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblFirstName), firstEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblLastName), lastEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPhoneNumber), phoneEntry),
	)

	buttons := container.NewHBox(cancelButton, importButton, addButton)

	return container.NewVBox(
		title,
		form,
		errorLabel,
		buttons,
	)
}

// localizedSaveError returns the generic persistence failure message.
func (app *SalonApp) localizedSaveError() string {
	msg := app.GetMsg(config.TKeySaveError)
	if msg == config.TKeySaveError {
		return config.FallbackSaveError
	}
	return msg
}
