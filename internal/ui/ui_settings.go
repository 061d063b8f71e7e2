package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/zalando/go-keyring"

	"github.com/tartampluch/salon-desk/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect    *widget.Select
	urlEntry      *widget.Entry
	userEntry     *widget.Entry
	passEntry     *widget.Entry
	entryInterval *NumericalEntry
	entryPort     *NumericalEntry
	entryOpens    *NumericalEntry
	entryCloses   *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog allowing users to manage settings.
func (app *SalonApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	// --- 1. Backend Section ---
	sw.urlEntry = widget.NewEntry()
	sw.urlEntry.SetText(app.Preferences.String(config.PrefBackendURL))
	sw.urlEntry.PlaceHolder = config.PlaceholderURL

	sw.userEntry = widget.NewEntry()
	sw.userEntry.SetText(app.Preferences.String(config.PrefUsername))

	sw.passEntry = widget.NewPasswordEntry()
	// Attempt to pre-fill password from secure storage
	if user := sw.userEntry.Text; user != "" {
		if pwd, err := keyring.Get(config.KeyringService, user); err == nil {
			sw.passEntry.SetText(pwd)
		}
	}

	itemURL := widget.NewFormItem(app.GetMsg(config.TKeyLblURL), sw.urlEntry)
	itemURL.HintText = app.GetMsg(config.TKeyHelpURL)
	itemUser := widget.NewFormItem(app.GetMsg(config.TKeyLblUser), sw.userEntry)
	itemPass := widget.NewFormItem(app.GetMsg(config.TKeyLblPass), sw.passEntry)

	backendForm := widget.NewForm(itemURL, itemUser, itemPass)
	backendCard := widget.NewCard(app.GetMsg(config.TKeyLblBackend), "", backendForm)

	// --- 2. General Section (Language, Interval & Feed Port) ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	// Interval: Numerical only. "0" or "empty" are handled in save logic.
	sw.entryInterval = NewNumericalEntry()
	sw.entryInterval.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefInterval, config.DefaultRefreshMin)))

	// Port: Numerical only, but requires strict Validation (Range 1-65535).
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefFeedPort, config.DefaultFeedPort))
	sw.entryPort.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrPortReq))
		}
		port, err := strconv.Atoi(s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPortNum))
		}
		if port < config.MinPort || port > config.MaxPort {
			return errors.New(app.GetMsg(config.TKeyErrPortRange))
		}
		return nil
	}

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	widInterval := container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblMinutes)), sw.entryInterval)
	itemInterval := widget.NewFormItem(app.GetMsg(config.TKeyLblRefresh), widInterval)
	itemInterval.HintText = app.GetMsg(config.TKeyHelpInterval)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblFeedPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpFeedPort)

	generalForm := widget.NewForm(itemLang, itemInterval, itemPort)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	// --- 3. Opening Hours Section ---
	sw.entryOpens = NewNumericalEntry()
	sw.entryOpens.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefOpensAt, config.DefaultOpensAt)))

	sw.entryCloses = NewNumericalEntry()
	sw.entryCloses.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefClosesAt, config.DefaultClosesAt)))

	itemOpens := widget.NewFormItem(app.GetMsg(config.TKeyLblOpensAt), sw.entryOpens)
	itemCloses := widget.NewFormItem(app.GetMsg(config.TKeyLblClosesAt), sw.entryCloses)
	itemCloses.HintText = app.GetMsg(config.TKeyHelpHours)

	hoursForm := widget.NewForm(itemOpens, itemCloses)
	hoursCard := widget.NewCard(app.GetMsg(config.TKeyLblHours), "", hoursForm)

	// --- Actions ---
	saveAction := func() {
		if err := sw.entryPort.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		if _, _, err := parseOpeningHours(sw.entryOpens.Text, sw.entryCloses.Text); err != nil {
			dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrHours)), w)
			return
		}
		app.saveSettings(sw, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		backendCard,
		generalCard,
		hoursCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// parseOpeningHours validates that both fields parse and form a non-empty
// window within a single day.
func parseOpeningHours(opensText, closesText string) (int, int, error) {
	opens, err := strconv.Atoi(opensText)
	if err != nil {
		return 0, 0, err
	}
	closes, err := strconv.Atoi(closesText)
	if err != nil {
		return 0, 0, err
	}
	if opens < config.HourOfDayMin || closes > config.HourOfDayMax || closes <= opens {
		return 0, 0, errors.New(config.ErrHoursRange)
	}
	return opens, closes, nil
}

// saveSettings persists the data and triggers a refresh.
func (app *SalonApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info("Saving preferences", config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefBackendURL, sw.urlEntry.Text)
	app.Preferences.SetString(config.PrefUsername, sw.userEntry.Text)

	// Save password to Keyring only if provided
	if sw.userEntry.Text != "" && sw.passEntry.Text != "" {
		if err := keyring.Set(config.KeyringService, sw.userEntry.Text, sw.passEntry.Text); err != nil {
			slog.Error("Failed to save credentials to keyring", config.LogKeyError, err, config.LogKeyComponent, config.CompUISet)
		}
	}

	// Logic: Interval
	// If empty or 0, we treat it as disabled (0).
	intervalText := sw.entryInterval.Text
	if intervalText == "" || intervalText == "0" {
		app.Preferences.SetInt(config.PrefInterval, config.DisabledInterval)
		slog.Info("Auto-refresh disabled via settings", config.LogKeyComponent, config.CompUISet)
	} else {
		if i, err := strconv.Atoi(intervalText); err == nil {
			app.Preferences.SetInt(config.PrefInterval, i)
		}
	}

	// Port
	if sw.entryPort.Text != "" {
		app.Preferences.SetString(config.PrefFeedPort, sw.entryPort.Text)
	}

	// Opening hours were validated before saveSettings was called.
	if opens, closes, err := parseOpeningHours(sw.entryOpens.Text, sw.entryCloses.Text); err == nil {
		app.Preferences.SetInt(config.PrefOpensAt, opens)
		app.Preferences.SetInt(config.PrefClosesAt, closes)
	}

	// Trigger system-wide updates
	if err := app.ReloadBackend(); err != nil {
		slog.Warn(config.ErrBackendURL,
			config.LogKeyComponent, config.CompUISet,
			config.LogKeyError, err)
	}
	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
		app.RenderStage()
	}
	go app.performRefresh(true)

	w.Close()
}
