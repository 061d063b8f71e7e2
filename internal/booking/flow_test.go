package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockPersister lets tests script backend outcomes and observe calls.
type mockPersister struct {
	mock.Mock
}

func (m *mockPersister) CreateCustomer(ctx context.Context, d CustomerDraft) (Customer, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(Customer), args.Error(1)
}

func (m *mockPersister) CreateAppointment(ctx context.Context, d AppointmentDraft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func TestFlow_FullBookingCycle(t *testing.T) {
	p := &mockPersister{}
	draft := CustomerDraft{}.WithFirstName("Ashley").WithLastName("Jones").WithPhoneNumber("613 555 0123")
	saved := Customer{ID: 42, FirstName: "Ashley", LastName: "Jones", PhoneNumber: "613 555 0123"}

	p.On("CreateCustomer", mock.Anything, draft).Return(saved, nil).Once()
	p.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil).Once()

	f := NewFlow(p)
	assert.Equal(t, StageDayView, f.Stage())

	require.True(t, f.RequestAdd())
	assert.Equal(t, StageAddingCustomer, f.Stage())

	require.NoError(t, f.SubmitCustomer(context.Background(), draft))
	assert.Equal(t, StageAddingAppointment, f.Stage())
	assert.Equal(t, saved, f.Customer())

	appt := AppointmentDraft{}.
		WithStylist("Pepe").
		WithService("Cut").
		WithStartsAt(time.UnixMilli(1543654800000))
	require.NoError(t, f.SubmitAppointment(context.Background(), appt))

	// The cycle completes back at the day view with no customer carried over.
	assert.Equal(t, StageDayView, f.Stage())
	assert.Equal(t, Customer{}, f.Customer())
	assert.False(t, f.SaveFailed())

	p.AssertExpectations(t)
}

func TestFlow_RequestAdd_OnlyFromDayView(t *testing.T) {
	p := &mockPersister{}
	f := NewFlow(p)

	require.True(t, f.RequestAdd())
	assert.False(t, f.RequestAdd(), "second request while the wizard is open must be refused")
	assert.Equal(t, StageAddingCustomer, f.Stage())
}

func TestFlow_SubmitCustomer_WrongStage(t *testing.T) {
	p := &mockPersister{}
	f := NewFlow(p)

	err := f.SubmitCustomer(context.Background(), CustomerDraft{})
	assert.ErrorIs(t, err, ErrWrongStage)
	assert.Equal(t, StageDayView, f.Stage())
}

func TestFlow_SubmitCustomer_FailureKeepsStage(t *testing.T) {
	p := &mockPersister{}
	p.On("CreateCustomer", mock.Anything, mock.Anything).
		Return(Customer{}, errors.New("boom")).Once()

	f := NewFlow(p)
	require.True(t, f.RequestAdd())

	err := f.SubmitCustomer(context.Background(), CustomerDraft{}.WithFirstName("Ashley"))
	require.Error(t, err)

	// The flow stays put so the user can correct and retry.
	assert.Equal(t, StageAddingCustomer, f.Stage())
	assert.True(t, f.SaveFailed())

	// A later success clears the failure flag and advances.
	p.On("CreateCustomer", mock.Anything, mock.Anything).
		Return(Customer{ID: 7}, nil).Once()
	require.NoError(t, f.SubmitCustomer(context.Background(), CustomerDraft{}.WithFirstName("Ashley")))
	assert.Equal(t, StageAddingAppointment, f.Stage())
	assert.False(t, f.SaveFailed())

	p.AssertExpectations(t)
}

func TestFlow_RejectsConcurrentSubmit(t *testing.T) {
	p := &mockPersister{}
	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)

	p.On("CreateCustomer", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(Customer{ID: 1}, nil).Once()

	f := NewFlow(p)
	require.True(t, f.RequestAdd())

	go func() {
		firstDone <- f.SubmitCustomer(context.Background(), CustomerDraft{})
	}()

	// Wait for the first submission to claim the in-flight token, then try
	// to submit again while it is still pending.
	<-started
	err := f.SubmitCustomer(context.Background(), CustomerDraft{})
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, StageAddingAppointment, f.Stage())
}

func TestFlow_CancelMakesResultStale(t *testing.T) {
	p := &mockPersister{}
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	p.On("CreateCustomer", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(Customer{ID: 9}, nil).Once()

	f := NewFlow(p)
	require.True(t, f.RequestAdd())

	go func() {
		done <- f.SubmitCustomer(context.Background(), CustomerDraft{})
	}()

	// Abandon the wizard while the backend call is still pending.
	<-started
	f.Cancel()
	assert.Equal(t, StageDayView, f.Stage())

	close(release)
	assert.ErrorIs(t, <-done, ErrStaleSubmit)

	// The late success did not resurrect the wizard.
	assert.Equal(t, StageDayView, f.Stage())
	assert.Equal(t, Customer{}, f.Customer())
}

func TestFlow_CancelAtDayViewIsNoop(t *testing.T) {
	f := NewFlow(&mockPersister{})
	f.Cancel()
	assert.Equal(t, StageDayView, f.Stage())
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "day_view", StageDayView.String())
	assert.Equal(t, "adding_customer", StageAddingCustomer.String())
	assert.Equal(t, "adding_appointment", StageAddingAppointment.String())
}
