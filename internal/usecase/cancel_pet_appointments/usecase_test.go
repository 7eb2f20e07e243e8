package cancel_pet_appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	future     []*domain.Appointment
	cancelErrs map[int64]error
	cancelled  []int64
}

func (f *fakeAppointmentRepo) ListActiveFutureByPet(context.Context, int64, time.Time) ([]*domain.Appointment, error) {
	return f.future, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64) error {
	if err, ok := f.cancelErrs[id]; ok {
		return err
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeCalendarRepo struct {
	deleted []int64
}

func (f *fakeCalendarRepo) DeleteByAppointment(_ context.Context, appointmentID int64) error {
	f.deleted = append(f.deleted, appointmentID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEvents struct {
	cancelled []int64
}

func (f *fakeEvents) AppointmentCancelled(_ context.Context, appointmentID, _ int64) {
	f.cancelled = append(f.cancelled, appointmentID)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(appointments *fakeAppointmentRepo, calendar *fakeCalendarRepo, events *fakeEvents) *UseCase {
	uc := NewUseCase(appointments, calendar, fakeTxManager{}, events, nopLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func TestExecute_CascadeCancelsFutureActive(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		future: []*domain.Appointment{
			{ID: 101, PetID: 7, Status: domain.StatusPending, StartTime: testNow.Add(24 * time.Hour)},
			{ID: 102, PetID: 7, Status: domain.StatusApproved, StartTime: testNow.Add(48 * time.Hour)},
		},
	}
	calendar := &fakeCalendarRepo{}
	events := &fakeEvents{}

	resp, err := newUseCase(appointments, calendar, events).Execute(
		context.Background(), &Request{PetID: 7, ActorID: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CancelledCount)
	assert.Equal(t, []int64{101, 102}, resp.CancelledIDs)
	assert.Equal(t, []int64{101, 102}, appointments.cancelled)
	assert.Equal(t, []int64{101, 102}, calendar.deleted)
	assert.Equal(t, []int64{101, 102}, events.cancelled)
}

func TestExecute_NoFutureAppointments(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	calendar := &fakeCalendarRepo{}
	events := &fakeEvents{}

	resp, err := newUseCase(appointments, calendar, events).Execute(
		context.Background(), &Request{PetID: 7, ActorID: 5})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.CancelledCount)
	assert.Empty(t, resp.CancelledIDs)
	assert.Empty(t, events.cancelled)
}

func TestExecute_SkipsAppointmentsThatRacedTerminal(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		future: []*domain.Appointment{
			{ID: 101, PetID: 7, Status: domain.StatusPending, StartTime: testNow.Add(24 * time.Hour)},
			{ID: 102, PetID: 7, Status: domain.StatusApproved, StartTime: testNow.Add(48 * time.Hour)},
		},
		cancelErrs: map[int64]error{101: apptRepo.ErrCannotCancel},
	}
	calendar := &fakeCalendarRepo{}
	events := &fakeEvents{}

	resp, err := newUseCase(appointments, calendar, events).Execute(
		context.Background(), &Request{PetID: 7, ActorID: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CancelledCount)
	assert.Equal(t, []int64{102}, resp.CancelledIDs)
	assert.Equal(t, []int64{102}, calendar.deleted, "skipped appointment keeps its calendar entry")
}

func TestExecute_InvalidPetID(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCalendarRepo{}, &fakeEvents{})

	_, err := uc.Execute(context.Background(), &Request{PetID: 0, ActorID: 5})
	assert.ErrorIs(t, err, ErrInvalidPetID)
}
