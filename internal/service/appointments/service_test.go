package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	byStatus     []*domain.Appointment
	byClient     []*domain.Appointment
	approved     []*domain.Appointment
	listedStatus *domain.AppointmentStatus
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{}}
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointmentRepo) ListByClient(_ context.Context, _ int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.listedStatus = status
	return f.byClient, nil
}

func (f *fakeAppointmentRepo) ListByStatus(context.Context, domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return f.byStatus, nil
}

func (f *fakeAppointmentRepo) ListApprovedAssignedBetween(context.Context, time.Time, time.Time) ([]*domain.Appointment, error) {
	return f.approved, nil
}

type fakeCalendarRepo struct {
	entries []*domain.CalendarEntry
}

func (f *fakeCalendarRepo) ListBetween(context.Context, time.Time, time.Time) ([]*domain.CalendarEntry, error) {
	return f.entries, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	calendar     *fakeCalendarRepo
	service      *Service
}

func newFixture() *fixture {
	f := &fixture{
		appointments: newFakeAppointmentRepo(),
		calendar:     &fakeCalendarRepo{},
	}
	identity := &fakeIdentityClient{
		users: map[int64]*identityClient.User{
			1:  {ID: 1, Role: ptr.Ptr(identityClient.RoleEmployee)},
			5:  {ID: 5, Role: ptr.Ptr(identityClient.RoleManager)},
			42: {ID: 42, Role: ptr.Ptr(identityClient.RoleClient)},
			77: {ID: 77, Role: ptr.Ptr(identityClient.RoleClient)},
		},
	}
	f.service = NewService(f.appointments, f.calendar, identity, nopLogger{})
	return f
}

func (f *fixture) seedAppointment() *domain.Appointment {
	a := &domain.Appointment{
		ID:              101,
		PetID:           7,
		ClientID:        42,
		ServiceID:       1,
		StartTime:       time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Status:          domain.StatusPending,
		FinalPrice:      50,
	}
	f.appointments.appointments[a.ID] = a
	return a
}

func TestGetByID(t *testing.T) {
	t.Run("owner sees own appointment", func(t *testing.T) {
		f := newFixture()
		f.seedAppointment()

		resp, err := f.service.GetByID(context.Background(), 101, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(101), resp.ID)
		assert.Equal(t, time.Date(2025, 6, 3, 10, 30, 0, 0, time.UTC), resp.EndTime)
	})

	t.Run("manager sees any appointment", func(t *testing.T) {
		f := newFixture()
		f.seedAppointment()

		_, err := f.service.GetByID(context.Background(), 101, 5)
		assert.NoError(t, err)
	})

	t.Run("other client denied", func(t *testing.T) {
		f := newFixture()
		f.seedAppointment()

		_, err := f.service.GetByID(context.Background(), 101, 77)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown actor denied", func(t *testing.T) {
		f := newFixture()
		f.seedAppointment()

		_, err := f.service.GetByID(context.Background(), 101, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetByID(context.Background(), 999, 42)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetOverlapping(t *testing.T) {
	t.Run("half-open intersection excluding self", func(t *testing.T) {
		f := newFixture()
		target := f.seedAppointment() // 09:00-10:30
		f.appointments.approved = []*domain.Appointment{
			target,
			{ID: 102, ClientID: 77, StartTime: target.StartTime.Add(time.Hour), DurationMinutes: 60,
				Status: domain.StatusApproved, EmployeeID: ptr.Ptr(int64(1))}, // 10:00-11:00 overlaps
			{ID: 103, ClientID: 77, StartTime: target.StartTime.Add(90 * time.Minute), DurationMinutes: 60,
				Status: domain.StatusApproved, EmployeeID: ptr.Ptr(int64(2))}, // back-to-back at 10:30, no overlap
		}

		resp, err := f.service.GetOverlapping(context.Background(), 101, 42)
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(102), resp.Appointments[0].ID)
	})

	t.Run("other client denied", func(t *testing.T) {
		f := newFixture()
		f.seedAppointment()

		_, err := f.service.GetOverlapping(context.Background(), 101, 77)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetOverlapping(context.Background(), 999, 5)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetClientAppointments(t *testing.T) {
	t.Run("status filter parsed", func(t *testing.T) {
		f := newFixture()
		f.appointments.byClient = []*domain.Appointment{f.seedAppointment()}

		resp, err := f.service.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: 42, Status: ptr.Ptr("pending"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		require.NotNil(t, f.appointments.listedStatus)
		assert.Equal(t, domain.StatusPending, *f.appointments.listedStatus)
	})

	t.Run("no filter passes nil", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{ClientID: 42})
		require.NoError(t, err)
		assert.Nil(t, f.appointments.listedStatus)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: 42, Status: ptr.Ptr("waiting"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetPendingAppointments(t *testing.T) {
	t.Run("manager gets the queue", func(t *testing.T) {
		f := newFixture()
		f.appointments.byStatus = []*domain.Appointment{f.seedAppointment()}

		resp, err := f.service.GetPendingAppointments(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		f := newFixture()

		for _, actor := range []int64{42, 1, 999} {
			_, err := f.service.GetPendingAppointments(context.Background(), actor)
			assert.ErrorIs(t, err, ErrAccessDenied)
		}
	})
}

func TestGetSchedule(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	t.Run("staff roles allowed", func(t *testing.T) {
		f := newFixture()
		f.calendar.entries = []*domain.CalendarEntry{
			{EmployeeID: 1, AppointmentID: 101, ScheduledTime: from.Add(9 * time.Hour), DurationMinutes: 90},
		}

		for _, actor := range []int64{5, 1} {
			resp, err := f.service.GetSchedule(context.Background(), &models.GetScheduleRequest{
				UserID: actor, FromDate: from, ToDate: to,
			})
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Total)
		}
	})

	t.Run("client denied", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetSchedule(context.Background(), &models.GetScheduleRequest{
			UserID: 42, FromDate: from, ToDate: to,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetSchedule(context.Background(), &models.GetScheduleRequest{
			UserID: 5, FromDate: to, ToDate: from,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
