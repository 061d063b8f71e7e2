package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/zalando/go-keyring"

	"github.com/tartampluch/salon-desk/internal/api"
	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
	"github.com/tartampluch/salon-desk/internal/feed"
	"github.com/tartampluch/salon-desk/internal/roster"
	"github.com/tartampluch/salon-desk/internal/schedule"
)

// SalonApp encapsulates the UI state, preferences, and background logic.
type SalonApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Feed  *feed.Server
	Clock schedule.Clock // Injected clock for testability (e.g. mocking time travel)
	Flow  *booking.Flow

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayRefreshItem  *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan string

	// Backend is swapped when settings change, guard it separately from data.
	backendMut sync.RWMutex
	backend    api.Backend

	// Day data from the last backend refresh.
	DataMut sync.RWMutex
	Roster  *roster.Roster
	Sheet   schedule.Sheet

	// In-progress form input, owned by the UI event loop.
	customerDraft    booking.CustomerDraft
	appointmentDraft booking.AppointmentDraft

	settingsWindow fyne.Window
}

// NewSalonApp constructs the application and wires dependencies.
func NewSalonApp(a fyne.App, ctx context.Context, srv *feed.Server, backend api.Backend) *SalonApp {
	return &SalonApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Feed:        srv,
		Clock:       schedule.RealClock{}, // Default to real clock in production
		backend:     backend,
		configChan:  make(chan string, config.ChannelBufferSize),
		Roster:      roster.New(nil),
	}
}

// Run launches the application services and the main UI loop.
func (app *SalonApp) Run() {
	app.SetupI18n()
	app.Flow = booking.NewFlow(app)
	app.watchPreferences()

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyPort, app.Feed.Port,
			config.LogKeyComponent, config.CompUI)

		if err := app.Feed.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Feed.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupport,
			config.LogKeyComponent, config.CompUI)
	}

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window.SetMaster()
	app.RenderStage()
	app.Window.Show()

	go app.backgroundWorker()
	app.App.Run()
}

// Backend returns the current API client, which may be nil before configuration.
func (app *SalonApp) Backend() api.Backend {
	app.backendMut.RLock()
	defer app.backendMut.RUnlock()
	return app.backend
}

// ReloadBackend rebuilds the API client from preferences and the keyring.
// Called after the settings window saves a new backend URL or credentials.
func (app *SalonApp) ReloadBackend() error {
	baseURL := app.Preferences.String(config.PrefBackendURL)
	user := app.Preferences.String(config.PrefUsername)

	var pass string
	if user != "" {
		if p, err := keyring.Get(config.KeyringService, user); err == nil {
			pass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, user,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}

	client, err := api.NewHTTPClient(baseURL, user, pass)
	if err != nil {
		return err
	}

	app.backendMut.Lock()
	app.backend = client
	app.backendMut.Unlock()
	return nil
}

// CreateCustomer delegates persistence to the current backend so the booking
// flow keeps working across client reloads.
func (app *SalonApp) CreateCustomer(ctx context.Context, draft booking.CustomerDraft) (booking.Customer, error) {
	backend := app.Backend()
	if backend == nil {
		return booking.Customer{}, errors.New(config.ErrBackendURL)
	}
	return backend.CreateCustomer(ctx, draft)
}

// CreateAppointment delegates persistence to the current backend.
func (app *SalonApp) CreateAppointment(ctx context.Context, draft booking.AppointmentDraft) error {
	backend := app.Backend()
	if backend == nil {
		return errors.New(config.ErrBackendURL)
	}
	return backend.CreateAppointment(ctx, draft)
}

// RenderStage swaps the main window content to match the booking flow stage.
func (app *SalonApp) RenderStage() {
	if app.Window == nil {
		return
	}

	switch app.Flow.Stage() {
	case booking.StageAddingCustomer:
		app.Window.SetContent(app.buildCustomerForm())
	case booking.StageAddingAppointment:
		app.Window.SetContent(app.buildAppointmentForm())
	default:
		app.Window.SetContent(app.buildDayView())
	}
}

// watchPreferences monitors changes to settings to trigger immediate updates.
func (app *SalonApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefInterval:
		default:
		}
	})
}

// setupTrayMenu constructs the system tray menu.
func (app *SalonApp) setupTrayMenu() {
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.Window.Show()
		app.Window.RequestFocus()
	})

	app.TrayRefreshItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRefresh), func() {
		go app.performRefresh(true)
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayRefreshItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *SalonApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayRefreshItem.Label = app.GetMsg(config.TKeyMenuRefresh)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// backgroundWorker manages the periodic refresh schedule.
func (app *SalonApp) backgroundWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	app.performRefresh(false)

	getInterval := func() time.Duration {
		val := app.Preferences.IntWithFallback(config.PrefInterval, config.DefaultRefreshMin)
		if val <= 0 {
			val = config.DefaultRefreshMin
		}
		return time.Duration(val) * time.Minute
	}

	currentDuration := getInterval()
	ticker := time.NewTicker(currentDuration)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, currentDuration)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-app.configChan:
			newDuration := getInterval()
			if newDuration != currentDuration {
				log.Info(config.MsgUpdateRefresh, config.LogKeyOld, currentDuration, config.LogKeyNew, newDuration)
				currentDuration = newDuration
				ticker.Reset(currentDuration)
			}

		case <-ticker.C:
			app.performRefresh(false)
		}
	}
}

// performRefresh pulls the day roster and availability sheet from the backend,
// republishes the calendar feed, and updates the tray status.
func (app *SalonApp) performRefresh(manual bool) {
	slog.Info(config.MsgRefreshReq,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyManual, manual)

	backend := app.Backend()
	if backend == nil {
		slog.Warn(config.ErrBackendURL, config.LogKeyComponent, config.CompUI)
		app.updateTrayStatus(-1)
		return
	}

	now := app.Clock.Now()

	appointments, err := backend.DayAppointments(app.Ctx, now)
	if err != nil {
		app.reportRefreshFailure(err, manual)
		return
	}

	sheet, err := backend.AvailabilitySheet(app.Ctx)
	if err != nil {
		app.reportRefreshFailure(err, manual)
		return
	}

	if ics, err := feed.BuildCalendar(appointments, now); err != nil {
		slog.Error(config.ErrICalEncode, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
	} else {
		app.Feed.Update(ics)
	}

	app.DataMut.Lock()
	app.Roster = roster.New(appointments)
	app.Sheet = sheet
	app.DataMut.Unlock()

	slog.Info(config.MsgRefreshOK,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(appointments))

	app.updateTrayStatus(len(appointments))

	if app.Flow.Stage() == booking.StageDayView {
		app.RenderStage()
	}
}

func (app *SalonApp) reportRefreshFailure(err error, manual bool) {
	slog.Error(config.MsgRefreshFailed, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
	if manual {
		app.App.SendNotification(fyne.NewNotification(
			config.TitleRefreshError, app.GetMsg(config.TKeyNotifRefreshErr)))
	}
	app.updateTrayStatus(-1)
}

// updateTrayStatus updates the top menu item to show today's appointment count.
func (app *SalonApp) updateTrayStatus(count int) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	var label string
	if count < 0 {
		label = config.FallbackTrayError
	} else if count == 0 {
		label = app.GetMsg(config.TKeyTrayStatusZero)
		if label == config.TKeyTrayStatusZero {
			label = fmt.Sprintf(config.FallbackTrayDefault, 0)
		}
	} else {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyTrayStatus,
				TemplateData: map[string]interface{}{"Count": count},
				PluralCount:  count,
			})
			if err == nil {
				label = msg
			}
		}
		if label == "" {
			label = fmt.Sprintf(config.FallbackTrayDefault, count)
		}
	}

	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}

// openingHours reads the configured opening window, falling back to defaults.
func (app *SalonApp) openingHours() (int, int) {
	opens := app.Preferences.IntWithFallback(config.PrefOpensAt, config.DefaultOpensAt)
	closes := app.Preferences.IntWithFallback(config.PrefClosesAt, config.DefaultClosesAt)
	return opens, closes
}
