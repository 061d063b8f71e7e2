package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tartampluch/salon-desk/internal/config"
)

// Persister is the slice of the backend the booking flow needs: one call
// per record, no retries. The HTTP client implements it; tests mock it.
type Persister interface {
	CreateCustomer(ctx context.Context, d CustomerDraft) (Customer, error)
	CreateAppointment(ctx context.Context, d AppointmentDraft) error
}

// Stage identifies where the booking wizard currently is.
type Stage int

const (
	// StageDayView is the initial and terminal stage of every cycle.
	StageDayView Stage = iota
	// StageAddingCustomer is the customer-intake step.
	StageAddingCustomer
	// StageAddingAppointment is the slot-picking step. It always carries
	// the customer persisted in the previous step.
	StageAddingAppointment
)

// String returns the stage name for logs.
func (s Stage) String() string {
	switch s {
	case StageAddingCustomer:
		return "adding_customer"
	case StageAddingAppointment:
		return "adding_appointment"
	default:
		return "day_view"
	}
}

// Flow errors. All are recoverable: the flow never transitions on error
// and the current draft stays editable for a user-initiated retry.
var (
	ErrWrongStage     = errors.New(config.ErrWrongStage)
	ErrSubmitInFlight = errors.New(config.ErrSubmitInFlight)
	ErrStaleSubmit    = errors.New(config.ErrStaleSubmit)
)

// Flow is the view-transition state machine for one booking cycle:
// day view -> adding customer -> adding appointment -> day view,
// carrying the persisted customer from step two into step three.
//
// Submissions are guarded two ways. Only one persistence call may be in
// flight at a time: a second submit is rejected with ErrSubmitInFlight
// instead of being queued. And a result that lands after the flow was
// cancelled or reset is discarded with ErrStaleSubmit, so a slow backend
// response can never resurrect an abandoned wizard.
type Flow struct {
	mu sync.Mutex

	persister Persister

	stage      Stage
	customer   Customer
	saveFailed bool
	inFlight   bool

	// session increments whenever the wizard restarts; a submission
	// started under an older session is stale by definition.
	session uint64
}

// NewFlow returns a flow at the day view.
func NewFlow(p Persister) *Flow {
	return &Flow{persister: p}
}

// Stage returns the current stage.
func (f *Flow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// Customer returns the customer persisted during the current cycle. Only
// meaningful at StageAddingAppointment.
func (f *Flow) Customer() Customer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.customer
}

// SaveFailed reports whether the last submission at the current stage
// failed. It resets on every stage change and on the next successful
// submission.
func (f *Flow) SaveFailed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveFailed
}

// RequestAdd starts a booking cycle. It only applies at the day view;
// anywhere else it reports false and changes nothing.
func (f *Flow) RequestAdd() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageDayView {
		return false
	}
	f.stage = StageAddingCustomer
	f.saveFailed = false
	f.logStage()
	return true
}

// Cancel abandons the wizard and returns to the day view. Any submission
// still in flight becomes stale and its result will be dropped.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage == StageDayView {
		return
	}
	f.reset()
	f.logStage()
}

// reset must be called with the lock held.
func (f *Flow) reset() {
	f.stage = StageDayView
	f.customer = Customer{}
	f.saveFailed = false
	f.session++
}

// SubmitCustomer persists the customer draft. On success the flow
// advances to the appointment step carrying the backend-assigned
// identity. On failure the flow stays put with SaveFailed set and the
// caller's draft intact.
func (f *Flow) SubmitCustomer(ctx context.Context, d CustomerDraft) error {
	session, err := f.beginSubmit(StageAddingCustomer)
	if err != nil {
		return err
	}

	customer, err := f.persister.CreateCustomer(ctx, d)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false

	if session != f.session {
		slog.Info(config.MsgStaleDropped, config.LogKeyComponent, config.CompFlow)
		return ErrStaleSubmit
	}
	if err != nil {
		f.saveFailed = true
		return fmt.Errorf("%s: %w", config.ErrSaveStatus, err)
	}

	f.customer = customer
	f.saveFailed = false
	f.stage = StageAddingAppointment
	f.logStage()
	slog.Info(config.MsgCustomerSaved,
		config.LogKeyComponent, config.CompFlow,
		config.LogKeyCustomer, customer.ID,
	)
	return nil
}

// SubmitAppointment persists the appointment draft. On success the cycle
// completes and the flow returns to the day view, ready for the next
// booking. Failure semantics match SubmitCustomer.
func (f *Flow) SubmitAppointment(ctx context.Context, d AppointmentDraft) error {
	session, err := f.beginSubmit(StageAddingAppointment)
	if err != nil {
		return err
	}

	err = f.persister.CreateAppointment(ctx, d)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false

	if session != f.session {
		slog.Info(config.MsgStaleDropped, config.LogKeyComponent, config.CompFlow)
		return ErrStaleSubmit
	}
	if err != nil {
		f.saveFailed = true
		return fmt.Errorf("%s: %w", config.ErrSaveStatus, err)
	}

	slog.Info(config.MsgApptSaved,
		config.LogKeyComponent, config.CompFlow,
		config.LogKeyStylist, d.Stylist,
		config.LogKeyService, d.Service,
		config.LogKeyStartsAt, d.StartsAt,
	)
	f.reset()
	f.logStage()
	return nil
}

// beginSubmit validates the stage and claims the single in-flight token.
// It returns the session the submission belongs to.
func (f *Flow) beginSubmit(want Stage) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != want {
		return 0, fmt.Errorf("%w: at %s", ErrWrongStage, f.stage)
	}
	if f.inFlight {
		return 0, ErrSubmitInFlight
	}
	f.inFlight = true
	return f.session, nil
}

// logStage must be called with the lock held.
func (f *Flow) logStage() {
	slog.Debug(config.MsgStageChange,
		config.LogKeyComponent, config.CompFlow,
		config.LogKeyStage, f.stage.String(),
	)
}
