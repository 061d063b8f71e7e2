// Package api implements the HTTP client for the salon backend. The
// backend owns all persistence and validation; this client does one
// attempt per call, reports any non-2xx status as an opaque failure, and
// leaves retrying to the operator.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tartampluch/salon-desk/internal/booking"
	"github.com/tartampluch/salon-desk/internal/config"
	"github.com/tartampluch/salon-desk/internal/schedule"
)

// Backend is the full client contract the UI consumes: the two write
// calls of the booking flow plus the two reads that feed the day view
// and the slot grid.
type Backend interface {
	booking.Persister
	DayAppointments(ctx context.Context, day time.Time) ([]booking.Appointment, error)
	AvailabilitySheet(ctx context.Context) (schedule.Sheet, error)
}

// HTTPClient talks JSON over HTTP to the salon backend.
type HTTPClient struct {
	Client *http.Client

	baseURL *url.URL
	user    string
	pass    string
}

// NewHTTPClient validates the base URL and returns a client with the
// standard timeout. Credentials are optional; when set they are sent as
// HTTP Basic Auth on every request.
func NewHTTPClient(baseURL, user, pass string) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf(config.ErrBackendURL)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	return &HTTPClient{
		Client:  &http.Client{Timeout: config.HTTPTimeout},
		baseURL: u,
		user:    user,
		pass:    pass,
	}, nil
}

// -----------------------------------------------------------------------------
// Wire DTOs
//
// Instants travel as epoch milliseconds. The grid's exact-equality slot
// matching depends on both directions using the same precision, so the
// conversions go through time.UnixMilli / Time.UnixMilli and nothing else.
// -----------------------------------------------------------------------------

type customerBody struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type customerCreated struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type appointmentBody struct {
	Stylist  string `json:"stylist"`
	Service  string `json:"service"`
	StartsAt int64  `json:"startsAt"`
}

type appointmentRecord struct {
	StartsAt int64        `json:"startsAt"`
	Customer customerBody `json:"customer"`
	Stylist  string       `json:"stylist"`
	Service  string       `json:"service"`
	Notes    string       `json:"notes"`
}

type slotRecord struct {
	StartsAt int64 `json:"startsAt"`
}

type stylistRecord struct {
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

type availabilityResponse struct {
	SelectableStylists []stylistRecord         `json:"selectableStylists"`
	AvailableTimeSlots map[string][]slotRecord `json:"availableTimeSlots"`
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// CreateCustomer persists a customer draft and returns it with the
// backend-assigned identity.
func (c *HTTPClient) CreateCustomer(ctx context.Context, d booking.CustomerDraft) (booking.Customer, error) {
	body := customerBody{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PhoneNumber: d.PhoneNumber,
	}

	var created customerCreated
	if err := c.postJSON(ctx, config.RouteCustomers, body, &created); err != nil {
		return booking.Customer{}, err
	}

	return booking.Customer{
		ID:          created.ID,
		FirstName:   created.FirstName,
		LastName:    created.LastName,
		PhoneNumber: created.PhoneNumber,
	}, nil
}

// CreateAppointment persists an appointment draft. The backend responds
// with no body the client cares about; only the status matters.
func (c *HTTPClient) CreateAppointment(ctx context.Context, d booking.AppointmentDraft) error {
	body := appointmentBody{
		Stylist:  d.Stylist,
		Service:  d.Service,
		StartsAt: d.StartsAt.UnixMilli(),
	}
	return c.postJSON(ctx, config.RouteAppointments, body, nil)
}

// DayAppointments fetches the confirmed appointments for one calendar day,
// in the order the backend keeps them (sorted by start time).
func (c *HTTPClient) DayAppointments(ctx context.Context, day time.Time) ([]booking.Appointment, error) {
	query := url.Values{}
	query.Set(config.QueryParamDate, day.Format(config.QueryDateLayout))

	var records []appointmentRecord
	if err := c.getJSON(ctx, config.RouteAppointments, query, &records); err != nil {
		return nil, err
	}

	appointments := make([]booking.Appointment, len(records))
	for i, r := range records {
		appointments[i] = booking.Appointment{
			StartsAt: time.UnixMilli(r.StartsAt),
			Customer: booking.CustomerDraft{
				FirstName:   r.Customer.FirstName,
				LastName:    r.Customer.LastName,
				PhoneNumber: r.Customer.PhoneNumber,
			},
			Stylist: r.Stylist,
			Service: r.Service,
			Notes:   r.Notes,
		}
	}
	return appointments, nil
}

// AvailabilitySheet fetches the stylist roster and the per-stylist
// bookable slots for the appointment form.
func (c *HTTPClient) AvailabilitySheet(ctx context.Context) (schedule.Sheet, error) {
	var resp availabilityResponse
	if err := c.getJSON(ctx, config.RouteAvailability, nil, &resp); err != nil {
		return schedule.Sheet{}, err
	}

	sheet := schedule.Sheet{
		Stylists:     make([]schedule.Stylist, len(resp.SelectableStylists)),
		Availability: make(schedule.Availability, len(resp.AvailableTimeSlots)),
	}
	for i, s := range resp.SelectableStylists {
		sheet.Stylists[i] = schedule.Stylist{Name: s.Name, Services: s.Services}
	}
	for name, slots := range resp.AvailableTimeSlots {
		instants := make([]time.Time, len(slots))
		for i, s := range slots {
			instants[i] = time.UnixMilli(s.StartsAt)
		}
		sheet.Availability[name] = instants
	}
	return sheet, nil
}

// -----------------------------------------------------------------------------
// Transport plumbing
// -----------------------------------------------------------------------------

// postJSON sends one JSON POST and optionally decodes a 2xx response
// body into out.
func (c *HTTPClient) postJSON(ctx context.Context, route string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrEncodeRequest, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, route, nil, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set(config.HeaderContentType, config.MimeJSON)

	return c.do(req, out)
}

// getJSON sends one GET and decodes the 2xx response body into out.
func (c *HTTPClient) getJSON(ctx context.Context, route string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, route, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, route string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL.JoinPath(route)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}

	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	if c.user != "" || c.pass != "" {
		req.SetBasicAuth(c.user, c.pass)
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	// Strip query parameters from the logged URL; the path is enough to
	// identify the call and queries may carry data worth keeping private.
	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompAPI),
		slog.String(config.LogKeyURL, req.URL.Scheme+"://"+req.URL.Host+req.URL.Path),
	)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("network error during %s: %w", req.Method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Per contract, no detail is extracted from failure bodies.
		log.Warn(config.ErrSaveStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))
		return fmt.Errorf("%s: %d %s", config.ErrSaveStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if out == nil {
		return nil
	}

	limited := io.LimitReader(resp.Body, config.MaxHTTPResponseSize)
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", config.ErrDecodeResponse, err)
	}
	return nil
}
