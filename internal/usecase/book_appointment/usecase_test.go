package book_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
	voucherRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/voucher"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	petClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/petservice"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

// now is Monday 2025-06-02 10:00 UTC; slotStart the following Tuesday 09:00.
var (
	testNow   = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	slotStart = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
)

type fakeAppointmentRepo struct {
	created       *domain.Appointment
	createErr     error
	activeSameDay int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *a
	created.ID = 101
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) CountActiveSameDay(context.Context, int64, time.Time, time.Time, *int64) (int, error) {
	return f.activeSameDay, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
	price   *domain.ServicePrice
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) GetPrice(_ context.Context, _ int64, size domain.PetSize) (*domain.ServicePrice, error) {
	if f.price == nil || f.price.Size != size {
		return nil, catalogRepo.ErrPriceNotFound
	}
	return f.price, nil
}

type fakeCalendarRepo struct {
	entries []*domain.CalendarEntry
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

type fakeVoucherRepo struct {
	voucher   *domain.Voucher
	redeemErr error
	redeemed  int
}

func (f *fakeVoucherRepo) GetByCode(_ context.Context, code string) (*domain.Voucher, error) {
	if f.voucher == nil || f.voucher.Code != code {
		return nil, voucherRepo.ErrVoucherNotFound
	}
	return f.voucher, nil
}

func (f *fakeVoucherRepo) Redeem(context.Context, string, int64) error {
	if f.redeemErr != nil {
		return f.redeemErr
	}
	f.redeemed++
	return nil
}

type fakePetClient struct {
	pet *petClient.Pet
}

func (f *fakePetClient) GetPet(_ context.Context, petID int64) (*petClient.Pet, error) {
	if f.pet == nil || f.pet.ID != petID {
		return nil, petClient.ErrPetNotFound
	}
	return f.pet, nil
}

type fakeIdentityClient struct {
	employees []*identityservice.Employee
}

func (f *fakeIdentityClient) ListEmployees(context.Context) ([]*identityservice.Employee, error) {
	return f.employees, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEvents struct {
	booked []int64
}

func (f *fakeEvents) AppointmentBooked(_ context.Context, appointmentID, _ int64) {
	f.booked = append(f.booked, appointmentID)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	catalog      *fakeCatalogRepo
	calendar     *fakeCalendarRepo
	timeOff      *fakeTimeOffRepo
	vouchers     *fakeVoucherRepo
	pets         *fakePetClient
	identity     *fakeIdentityClient
	events       *fakeEvents
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		catalog: &fakeCatalogRepo{
			service: &domain.Service{
				ID:                1,
				Name:              "Full Groom",
				DurationMinutes:   90,
				AllowedStartTimes: "09:00,11:30,14:00",
				IsActive:          true,
			},
			price: &domain.ServicePrice{ServiceID: 1, Size: domain.SizeMedium, Price: 50},
		},
		calendar: &fakeCalendarRepo{},
		timeOff:  &fakeTimeOffRepo{},
		vouchers: &fakeVoucherRepo{},
		pets: &fakePetClient{
			pet: &petClient.Pet{ID: 7, OwnerID: 42, Name: "Rex", Size: domain.SizeMedium, Status: petClient.PetVerified},
		},
		identity: &fakeIdentityClient{
			employees: []*identityservice.Employee{{ID: 1, Name: "Sam"}},
		},
		events: &fakeEvents{},
	}

	f.useCase = NewUseCase(
		f.appointments, f.catalog, f.calendar, f.timeOff, f.vouchers,
		f.pets, f.identity, fakeTxManager{}, f.events, nopLogger{},
	)
	f.useCase.timeProvider = fixedTime{testNow}
	return f
}

func validRequest() *Request {
	return &Request{ClientID: 42, PetID: 7, ServiceID: 1, StartTime: slotStart}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.InDelta(t, 50.0, resp.FinalPrice, 0.001)
	assert.Equal(t, "Rex", resp.PetName)
	assert.Equal(t, "Full Groom", resp.ServiceName)
	assert.Equal(t, []int64{101}, f.events.booked)
}

func TestExecute_VoucherApplied(t *testing.T) {
	f := newFixture()
	f.vouchers.voucher = &domain.Voucher{
		Code:               "WELCOME10",
		DiscountPercentage: 10,
		ExpiryDate:         time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	req := validRequest()
	req.VoucherCode = ptr.Ptr("WELCOME10")

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 45.0, resp.FinalPrice, 0.001)
	assert.Equal(t, 1, f.vouchers.redeemed)
}

func TestExecute_VoucherRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{"unknown code", func(f *fixture) {}},
		{"expired yesterday", func(f *fixture) {
			f.vouchers.voucher = &domain.Voucher{
				Code:               "WELCOME10",
				DiscountPercentage: 10,
				ExpiryDate:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}
		}},
		{"already redeemed", func(f *fixture) {
			f.vouchers.voucher = &domain.Voucher{
				Code:               "WELCOME10",
				DiscountPercentage: 10,
				ExpiryDate:         time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				IsRedeemed:         true,
			}
		}},
		{"lost redemption race", func(f *fixture) {
			f.vouchers.voucher = &domain.Voucher{
				Code:               "WELCOME10",
				DiscountPercentage: 10,
				ExpiryDate:         time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			}
			f.vouchers.redeemErr = voucherRepo.ErrAlreadyRedeemed
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			req := validRequest()
			req.VoucherCode = ptr.Ptr("WELCOME10")

			_, err := f.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrVoucherInvalid)
			assert.Empty(t, f.events.booked)
		})
	}
}

func TestExecute_PetChecks(t *testing.T) {
	t.Run("pet not found", func(t *testing.T) {
		f := newFixture()
		f.pets.pet = nil
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("pet belongs to someone else", func(t *testing.T) {
		f := newFixture()
		f.pets.pet.OwnerID = 99
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPetNotOwned)
	})

	t.Run("pet not verified", func(t *testing.T) {
		f := newFixture()
		f.pets.pet.Status = petClient.PetPending
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPetNotVerified)
	})
}

func TestExecute_ScheduleRules(t *testing.T) {
	t.Run("inactive service is hidden", func(t *testing.T) {
		f := newFixture()
		f.catalog.service.IsActive = false
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("start time not in allowed list", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.StartTime = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartTimeNotAllowed)
	})

	t.Run("sunday is closed", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.StartTime = time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("start in the past", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.StartTime = testNow.Add(-time.Hour)
		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartTimeInPast)
	})

	t.Run("beyond the booking horizon", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.StartTime = time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC) // 98 days out
		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrBeyondBookingHorizon)
	})
}

func TestExecute_PriceNotConfigured(t *testing.T) {
	f := newFixture()
	f.pets.pet.Size = domain.SizeLarge // only medium is priced

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
}

func TestExecute_DailyLimit(t *testing.T) {
	f := newFixture()
	f.appointments.activeSameDay = domain.MaxSameDayAppointments

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestExecute_NoEmployeeAvailable(t *testing.T) {
	t.Run("single groomer already committed", func(t *testing.T) {
		f := newFixture()
		f.calendar.entries = []*domain.CalendarEntry{
			{EmployeeID: 1, AppointmentID: 55, ScheduledTime: slotStart, DurationMinutes: 90},
		}
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrNoEmployeeAvailable)
	})

	t.Run("second groomer takes the slot", func(t *testing.T) {
		f := newFixture()
		f.identity.employees = []*identityservice.Employee{{ID: 1}, {ID: 2}}
		f.calendar.entries = []*domain.CalendarEntry{
			{EmployeeID: 1, AppointmentID: 55, ScheduledTime: slotStart, DurationMinutes: 90},
		}
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("approved time off blocks the only groomer", func(t *testing.T) {
		f := newFixture()
		f.timeOff.approved = []*domain.TimeOffRequest{{
			EmployeeID: 1,
			StartTime:  slotStart.Add(-time.Hour),
			EndTime:    slotStart.Add(4 * time.Hour),
			Status:     domain.TimeOffApproved,
		}}
		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrNoEmployeeAvailable)
	})
}

func TestExecute_DuplicateSlot(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = apptRepo.ErrDuplicateAppointment

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
	assert.Empty(t, f.events.booked)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"zero client", func(r *Request) { r.ClientID = 0 }, ErrInvalidClientID},
		{"zero pet", func(r *Request) { r.PetID = 0 }, ErrInvalidPetID},
		{"zero service", func(r *Request) { r.ServiceID = 0 }, ErrInvalidServiceID},
		{"zero start", func(r *Request) { r.StartTime = time.Time{} }, ErrInvalidStartTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
