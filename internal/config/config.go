package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Salon-Desk/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Salon Desk"
	AppID             = "com.github.tartampluch.salon-desk"
	KeyringService    = "com.github.tartampluch.salon-desk"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 600
	MainWindowWidth     = 760
	MainWindowHeight    = 520

	// Preference Keys
	PrefBackendURL = "backend_url"
	PrefUsername   = "username"
	PrefLanguage   = "language"
	PrefInterval   = "refresh_interval_min"
	PrefFeedPort   = "feed_port"
	PrefOpensAt    = "salon_opens_at"
	PrefClosesAt   = "salon_closes_at"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Time Slot Grid Constants
// -----------------------------------------------------------------------------

const (
	// SlotInterval is the length of one bookable position in the grid.
	SlotInterval = 30 * time.Minute

	// SlotsPerHour is derived from SlotInterval and used for grid sizing.
	SlotsPerHour = 2

	// WeekDays is the width of the rolling booking window.
	WeekDays = 7

	// Valid range for salon opening hours (hour of day).
	HourOfDayMin = 0
	HourOfDayMax = 24

	// Display layouts for grid labels.
	TimeOfDayLayout  = "15:04"
	ShortDateLayout  = "Mon 02"
	QueryDateLayout  = "2006-01-02"
	DetailTimeLayout = "Mon 02 Jan, 15:04"

	// Slot cell markers.
	SlotMarkFree     = "○"
	SlotMarkSelected = "●"
	SlotMarkTaken    = ""

	// Day view formats.
	FormatDayTitle     = "%s - %s"
	FormatRosterLine   = "%s  %s (%s)"
	FormatDetailHeader = "%s\n\n%s: %s\n%s: %s\n\n%s: %s\n%s: %s\n"
	FormatDetailNotes  = "\n%s: %s\n"
)

// -----------------------------------------------------------------------------
// Booking Defaults
// -----------------------------------------------------------------------------

const (
	DefaultOpensAt    = 9
	DefaultClosesAt   = 19
	DefaultFeedPort   = "18081"
	DefaultRefreshMin = 5
	DefaultLanguage   = "en"
	DisabledInterval  = 0
)

// DefaultServices is the salon-wide service list used when no stylist is
// chosen or the backend supplies no roster.
var DefaultServices = []string{
	"Cut",
	"Blow-dry",
	"Cut & color",
	"Beard trim",
	"Cut & beard trim",
	"Extensions",
}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyMenuRefresh    = "menu_refresh"
	TKeyMenuSettings   = "menu_settings"
	TKeyTrayStatus     = "tray_status"      // Requires Count > 0
	TKeyTrayStatusZero = "tray_status_zero" // Explicit key for 0

	// Day view
	TKeyBtnAdd         = "btn_add_customer_appointment"
	TKeyNoAppointments = "lbl_no_appointments"
	TKeyLblTodaysAppts = "lbl_todays_appointments"
	TKeyLblCustomer    = "lbl_customer"
	TKeyLblPhone       = "lbl_phone"
	TKeyLblNotes       = "lbl_notes"

	// Customer form
	TKeyTitleAddCustomer = "title_add_customer"
	TKeyLblFirstName     = "lbl_first_name"
	TKeyLblLastName      = "lbl_last_name"
	TKeyLblPhoneNumber   = "lbl_phone_number"
	TKeyBtnImportVCard   = "btn_import_vcard"
	TKeyBtnAddCustomer   = "btn_add"
	TKeyBtnCancel        = "btn_cancel"

	// Appointment form
	TKeyTitleAddAppt  = "title_add_appointment"
	TKeyLblBookingFor = "lbl_booking_for" // Requires Name
	TKeyLblService    = "lbl_service"
	TKeyLblStylist    = "lbl_stylist"
	TKeyBtnBook       = "btn_book"

	// Shared form feedback
	TKeySaveError = "err_save"
	TKeyErrNoSlot = "err_no_slot_selected"

	// Settings
	TKeyLblBackend   = "lbl_backend"
	TKeyLblURL       = "lbl_url"
	TKeyHelpURL      = "help_backend_url"
	TKeyLblUser      = "lbl_user"
	TKeyLblPass      = "lbl_pass"
	TKeyLblGeneral   = "lbl_general"
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblRefresh   = "lbl_refresh_interval"
	TKeyHelpInterval = "help_interval"
	TKeyLblMinutes   = "lbl_minutes_suffix"
	TKeyLblFeedPort  = "lbl_feed_port"
	TKeyHelpFeedPort = "help_feed_port"
	TKeyLblHours     = "lbl_opening_hours"
	TKeyLblOpensAt   = "lbl_opens_at"
	TKeyLblClosesAt  = "lbl_closes_at"
	TKeyHelpHours    = "help_hours"
	TKeyBtnSave      = "btn_save"
	TKeyLblFooter    = "lbl_footer"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
	TKeyErrHours     = "err_hours_range"

	// Notifications
	TKeyNotifBooked     = "notif_booked"
	TKeyNotifRefreshErr = "notif_refresh_error"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Salon Desk//Feed//EN"
	ICalCalName = "Salon Appointments"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "salondesk"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// FormatFeedSummary expects service and customer full name.
	FormatFeedSummary = "%s: %s"

	// UID Generation
	UIDSalt         = "salon-desk-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"
)

// StubVCalendar is the minimal valid iCalendar object used when the day
// has no appointments. Clients flag an empty body as invalid, so a bare
// VCALENDAR envelope is served instead.
const StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

// -----------------------------------------------------------------------------
// Backend API Routes & Fields
// -----------------------------------------------------------------------------

const (
	RouteCustomers    = "/customers"
	RouteAppointments = "/appointments"
	RouteAvailability = "/availability"

	QueryParamDate = "date"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 8 * 1024 * 1024 // 8MB; rosters and day lists are small
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	FeedRoute           = "/"
	AddrSeparator       = ":"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderRetryAfter   = "Retry-After"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderUserAgent    = "User-Agent"
	HeaderIfNoneMatch  = "If-None-Match"

	MimeJSON            = "application/json"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrHoursRange     = "schedule error: closing hour must be after opening hour"
	ErrBackendURL     = "configuration error: backend URL is empty"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrSaveStatus     = "backend returned unexpected status"
	ErrEncodeRequest  = "failed to encode request body"
	ErrDecodeResponse = "failed to decode response body"
	ErrWrongStage     = "booking flow is not at the expected stage"
	ErrSubmitInFlight = "a submission is already in flight"
	ErrStaleSubmit    = "submission finished after the flow moved on"
	ErrNoVCard        = "no contact found in vCard stream"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrServerStartup  = "feed server startup failed"
	ErrServerShutdown = "feed server shutdown failed"
	ErrPortRequired   = "feed server port is required"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrTrayNotSupport = "system tray not supported on this platform/driver"
	ErrRefreshFailed  = "refresh from backend failed"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackTrayError   = "Salon Desk: Refresh Error"
	FallbackTrayDefault = "Salon Desk (%d appointments)"
	FallbackTrayLabel   = "Salon Desk"
	FallbackSaveError   = "An error occurred during save"

	TitleStartupError = "Startup Error"
	TitleRefreshError = "Refresh Error"
	TitleBookingDone  = "Appointment booked"

	MsgPortBusy      = "Port %s is busy or unavailable."
	MsgRefreshReq    = "Refresh requested"
	MsgRefreshOK     = "Backend refresh successful"
	MsgRefreshFailed = "Backend refresh failed. Check logs."
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgUpdateRefresh = "Updating refresh interval"
	MsgAppStop       = "Application stopped gracefully"
	MsgAppStarting   = "Starting application"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgServerListen  = "Feed server listening"
	MsgServerStop    = "Shutting down feed server..."
	MsgFeedUpdated   = "Feed cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgCustomerSaved = "Customer persisted"
	MsgApptSaved     = "Appointment persisted"
	MsgStageChange   = "Booking flow stage changed"
	MsgStaleDropped  = "Dropping stale submission result"
	MsgSelectIgnored = "Ignoring out-of-range roster selection"

	PlaceholderURL = "https://..."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyUser      = "user"
	LogKeyCount     = "count"
	LogKeyStylist   = "stylist"
	LogKeyService   = "service"
	LogKeyStartsAt  = "starts_at"
	LogKeyStage     = "stage"
	LogKeyCustomer  = "customer_id"
	LogKeyDate      = "date"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyManual    = "manual"
	LogKeyDuration  = "duration_ms"
	LogKeyIndex     = "index"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompFlow   = "flow"
	CompAPI    = "api"
	CompFeed   = "feed"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
	SlotColumnWidth     = 90
	TimeHeaderWidth     = 70

	// TablePlaceholder sizes list and table cells before real content arrives.
	TablePlaceholder = "Template"

	// DaySplitOffset is the list/detail ratio of the day view split pane.
	DaySplitOffset = 0.55
)
