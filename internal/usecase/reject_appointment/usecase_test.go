package reject_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	rejectErr   error
	rejected    bool
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *f.appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) Reject(context.Context, int64) error {
	if f.rejectErr != nil {
		return f.rejectErr
	}
	f.rejected = true
	return nil
}

type fakeIdentityClient struct {
	users map[int64]*identityClient.User
}

func (f *fakeIdentityClient) GetUser(_ context.Context, userID int64) (*identityClient.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, identityClient.ErrUserNotFound
	}
	return user, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEvents struct {
	rejected []int64
}

func (f *fakeEvents) AppointmentRejected(_ context.Context, appointmentID, _ int64) {
	f.rejected = append(f.rejected, appointmentID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	events       *fakeEvents
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{
			appointment: &domain.Appointment{
				ID:        101,
				ClientID:  42,
				StartTime: time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
				Status:    domain.StatusPending,
				EditCount: 1,
			},
		},
		events: &fakeEvents{},
	}

	identity := &fakeIdentityClient{
		users: map[int64]*identityClient.User{
			5: {ID: 5, Role: ptr.Ptr(identityClient.RoleManager)},
			6: {ID: 6, Role: ptr.Ptr(identityClient.RoleClient)},
		},
	}

	f.useCase = NewUseCase(f.appointments, identity, fakeTxManager{}, f.events, nopLogger{})
	return f
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 101, ManagerID: 5})
	require.NoError(t, err)

	assert.True(t, f.appointments.rejected)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	assert.Equal(t, domain.MaxEditCount-1, resp.EditsRemaining, "rejected appointments stay editable")
	assert.Equal(t, []int64{101}, f.events.rejected)
}

func TestExecute_OnlyManagersReject(t *testing.T) {
	t.Run("client actor", func(t *testing.T) {
		f := newFixture()

		_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 101, ManagerID: 6})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown actor", func(t *testing.T) {
		f := newFixture()

		_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 101, ManagerID: 999})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 999, ManagerID: 5})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_NotPending(t *testing.T) {
	f := newFixture()
	f.appointments.rejectErr = apptRepo.ErrNotPending
	f.appointments.appointment.Status = domain.StatusApproved

	_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 101, ManagerID: 5})
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Empty(t, f.events.rejected)
}

func TestExecute_InvalidAppointmentID(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 0, ManagerID: 5})
	assert.ErrorIs(t, err, ErrInvalidAppointmentID)
}
