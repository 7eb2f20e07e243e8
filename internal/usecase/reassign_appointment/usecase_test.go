package reassign_appointment

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

var slotStart = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	updateErr   error
	assignedTo  int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *f.appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) UpdateEmployee(_ context.Context, _ int64, employeeID int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.assignedTo = employeeID
	return nil
}

type fakeCalendarRepo struct {
	entries  []*domain.CalendarEntry
	upserted *domain.CalendarEntry
}

func (f *fakeCalendarRepo) Upsert(_ context.Context, e *domain.CalendarEntry) error {
	f.upserted = e
	return nil
}

func (f *fakeCalendarRepo) ListBetween(context.Context, time.Time, time.Time) ([]*domain.CalendarEntry, error) {
	return f.entries, nil
}

type fakeTimeOffRepo struct {
	approved []*domain.TimeOffRequest
}

func (f *fakeTimeOffRepo) ListApprovedOverlapping(context.Context, time.Time, time.Time) ([]*domain.TimeOffRequest, error) {
	return f.approved, nil
}

type fakeIdentityClient struct {
	users     map[int64]*identityClient.User
	employees []*identityClient.Employee
}

func (f *fakeIdentityClient) GetUser(_ context.Context, userID int64) (*identityClient.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, identityClient.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeIdentityClient) ListEmployees(context.Context) ([]*identityClient.Employee, error) {
	return f.employees, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEvents struct {
	reassigned []int64
}

func (f *fakeEvents) AppointmentReassigned(_ context.Context, appointmentID, _ int64) {
	f.reassigned = append(f.reassigned, appointmentID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	calendar     *fakeCalendarRepo
	timeOff      *fakeTimeOffRepo
	events       *fakeEvents
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{
			appointment: &domain.Appointment{
				ID:              101,
				PetID:           7,
				ClientID:        42,
				ServiceID:       1,
				EmployeeID:      ptr.Ptr(int64(1)),
				StartTime:       slotStart,
				DurationMinutes: 90,
				Status:          domain.StatusApproved,
			},
		},
		calendar: &fakeCalendarRepo{},
		timeOff:  &fakeTimeOffRepo{},
		events:   &fakeEvents{},
	}

	identity := &fakeIdentityClient{
		users: map[int64]*identityClient.User{
			5: {ID: 5, Role: ptr.Ptr(identityClient.RoleManager)},
			6: {ID: 6, Role: ptr.Ptr(identityClient.RoleClient)},
		},
		employees: []*identityClient.Employee{
			{ID: 1, Name: "Sam"},
			{ID: 2, Name: "Alex"},
		},
	}

	f.useCase = NewUseCase(
		f.appointments, f.calendar, f.timeOff, identity,
		fakeTxManager{}, f.events, nopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{AppointmentID: 101, ManagerID: 5, NewEmployeeID: 2}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(2), f.appointments.assignedTo)
	assert.Equal(t, int64(2), resp.EmployeeID)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)

	require.NotNil(t, f.calendar.upserted)
	assert.Equal(t, int64(2), f.calendar.upserted.EmployeeID)
	assert.Equal(t, int64(101), f.calendar.upserted.AppointmentID)
	assert.Equal(t, slotStart, f.calendar.upserted.ScheduledTime)

	assert.Equal(t, []int64{101}, f.events.reassigned)
}

func TestExecute_OnlyManagersReassign(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ManagerID = 6

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_EmployeeNotOnRoster(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.NewEmployeeID = 9

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_NotApproved(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusPending, domain.StatusCancelled, domain.StatusCompleted, domain.StatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			f.appointments.appointment.Status = status

			_, err := f.useCase.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrNotApproved)
		})
	}
}

func TestExecute_SameEmployeeIsNoOp(t *testing.T) {
	// Moving an appointment to the employee who already holds it succeeds
	// without touching the appointment, the calendar, or the event stream.
	f := newFixture()
	req := validRequest()
	req.NewEmployeeID = 1

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)

	assert.Zero(t, f.appointments.assignedTo)
	assert.Nil(t, f.calendar.upserted)
	assert.Empty(t, f.events.reassigned)
}

func TestExecute_NewEmployeeBusy(t *testing.T) {
	t.Run("committed elsewhere in the window", func(t *testing.T) {
		f := newFixture()
		f.calendar.entries = []*domain.CalendarEntry{
			{EmployeeID: 2, AppointmentID: 55, ScheduledTime: slotStart.Add(30 * time.Minute), DurationMinutes: 60},
		}

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrEmployeeBusy)
	})

	t.Run("the moved appointment's own entry is excluded", func(t *testing.T) {
		f := newFixture()
		f.calendar.entries = []*domain.CalendarEntry{
			{EmployeeID: 1, AppointmentID: 101, ScheduledTime: slotStart, DurationMinutes: 90},
		}

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("approved time off blocks", func(t *testing.T) {
		f := newFixture()
		f.timeOff.approved = []*domain.TimeOffRequest{{
			EmployeeID: 2,
			StartTime:  slotStart.Add(-time.Hour),
			EndTime:    slotStart.Add(4 * time.Hour),
			Status:     domain.TimeOffApproved,
		}}

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrEmployeeBusy)
	})
}

func TestExecute_UpdateRaceLost(t *testing.T) {
	f := newFixture()
	f.appointments.updateErr = apptRepo.ErrNotApproved

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotApproved)
	assert.Nil(t, f.calendar.upserted)
	assert.Empty(t, f.events.reassigned)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 0, ManagerID: 5, NewEmployeeID: 2})
	assert.ErrorIs(t, err, ErrInvalidAppointmentID)

	_, err = f.useCase.Execute(context.Background(), &Request{AppointmentID: 101, ManagerID: 5, NewEmployeeID: 0})
	assert.ErrorIs(t, err, ErrInvalidEmployeeID)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 999, ManagerID: 5, NewEmployeeID: 2})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
