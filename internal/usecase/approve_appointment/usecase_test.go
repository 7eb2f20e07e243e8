package approve_appointment

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
	approveErr  error
	approved    bool
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *f.appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) Approve(context.Context, int64, int64) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	f.approved = true
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

func (f *fakeCalendarRepo) ExistsAt(_ context.Context, employeeID int64, from, to time.Time, excludeAppointmentID *int64) (bool, error) {
	for _, e := range f.entries {
		if e.EmployeeID != employeeID {
			continue
		}
		if excludeAppointmentID != nil && e.AppointmentID == *excludeAppointmentID {
			continue
		}
		if !e.ScheduledTime.Before(from) && e.ScheduledTime.Before(to) {
			return true, nil
		}
	}
	return false, nil
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
	approved []int64
}

func (f *fakeEvents) AppointmentApproved(_ context.Context, appointmentID, _ int64) {
	f.approved = append(f.approved, appointmentID)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow   = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	slotStart = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
)

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
				StartTime:       slotStart,
				DurationMinutes: 90,
				Status:          domain.StatusPending,
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
		employees: []*identityClient.Employee{{ID: 1, Name: "Sam"}},
	}

	f.useCase = NewUseCase(
		f.appointments, f.calendar, f.timeOff, identity,
		fakeTxManager{}, f.events, nopLogger{},
	)
	f.useCase.timeProvider = fixedTime{testNow}
	return f
}

func validRequest() *Request {
	return &Request{AppointmentID: 101, ManagerID: 5, EmployeeID: 1}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, f.appointments.approved)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, int64(1), resp.EmployeeID)

	require.NotNil(t, f.calendar.upserted)
	assert.Equal(t, int64(1), f.calendar.upserted.EmployeeID)
	assert.Equal(t, int64(101), f.calendar.upserted.AppointmentID)
	assert.Equal(t, slotStart, f.calendar.upserted.ScheduledTime)
	assert.False(t, f.calendar.upserted.Available)

	assert.Equal(t, []int64{101}, f.events.approved)
}

func TestExecute_OnlyManagersApprove(t *testing.T) {
	t.Run("client actor", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ManagerID = 6

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown actor", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ManagerID = 999

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestExecute_EmployeeNotOnRoster(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.EmployeeID = 9

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_NotPending(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusApproved, domain.StatusCancelled, domain.StatusCompleted, domain.StatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			f.appointments.appointment.Status = status

			_, err := f.useCase.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrNotPending)
		})
	}
}

func TestExecute_PastAppointment(t *testing.T) {
	t.Run("elapsed start time cannot be approved", func(t *testing.T) {
		f := newFixture()
		f.appointments.appointment.StartTime = testNow.Add(-48 * time.Hour)

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStartTimeInPast)
		assert.False(t, f.appointments.approved)
		assert.Nil(t, f.calendar.upserted)
		assert.Empty(t, f.events.approved)
	})

	t.Run("start time equal to now is already past", func(t *testing.T) {
		f := newFixture()
		f.appointments.appointment.StartTime = testNow

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStartTimeInPast)
	})
}

func TestExecute_ConcurrentApprovalLoses(t *testing.T) {
	// A second manager's transaction sees pending but loses the guarded
	// update race.
	f := newFixture()
	f.appointments.approveErr = apptRepo.ErrNotPending

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Nil(t, f.calendar.upserted)
	assert.Empty(t, f.events.approved)
}

func TestExecute_EmployeeBusy(t *testing.T) {
	t.Run("committed elsewhere in the window", func(t *testing.T) {
		f := newFixture()
		f.calendar.entries = []*domain.CalendarEntry{
			{EmployeeID: 1, AppointmentID: 55, ScheduledTime: slotStart.Add(30 * time.Minute), DurationMinutes: 60},
		}

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrEmployeeBusy)
	})

	t.Run("own calendar entry is not a conflict", func(t *testing.T) {
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
			EmployeeID: 1,
			StartTime:  slotStart.Add(-time.Hour),
			EndTime:    slotStart.Add(4 * time.Hour),
			Status:     domain.TimeOffApproved,
		}}

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrEmployeeBusy)
	})
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{AppointmentID: 0, ManagerID: 5, EmployeeID: 1})
	assert.ErrorIs(t, err, ErrInvalidAppointmentID)

	_, err = f.useCase.Execute(context.Background(), &Request{AppointmentID: 101, ManagerID: 5, EmployeeID: 0})
	assert.ErrorIs(t, err, ErrInvalidEmployeeID)
}
