package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog/models"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

type fakeCatalogRepo struct {
	services  map[int64]*domain.Service
	prices    map[int64][]*domain.ServicePrice
	createErr error
	upserted  *domain.ServicePrice
	active    map[int64]bool
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: map[int64]*domain.Service{},
		prices:   map[int64][]*domain.ServicePrice{},
		active:   map[int64]bool{},
	}
}

func (f *fakeCatalogRepo) CreateService(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *s
	created.ID = int64(len(f.services) + 1)
	f.services[created.ID] = &created
	return &created, nil
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeCatalogRepo) ListServices(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range f.services {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCatalogRepo) UpdateService(_ context.Context, s *domain.Service) error {
	if _, ok := f.services[s.ID]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	f.services[s.ID] = s
	return nil
}

func (f *fakeCatalogRepo) SetServiceActive(_ context.Context, id int64, active bool) error {
	s, ok := f.services[id]
	if !ok {
		return catalogRepo.ErrServiceNotFound
	}
	s.IsActive = active
	f.active[id] = active
	return nil
}

func (f *fakeCatalogRepo) UpsertPrice(_ context.Context, p *domain.ServicePrice) error {
	f.upserted = p
	f.prices[p.ServiceID] = append(f.prices[p.ServiceID], p)
	return nil
}

func (f *fakeCatalogRepo) GetPrice(_ context.Context, serviceID int64, size domain.PetSize) (*domain.ServicePrice, error) {
	for _, p := range f.prices[serviceID] {
		if p.Size == size {
			return p, nil
		}
	}
	return nil, catalogRepo.ErrPriceNotFound
}

func (f *fakeCatalogRepo) ListPrices(_ context.Context, serviceID int64) ([]*domain.ServicePrice, error) {
	return f.prices[serviceID], nil
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
	repo    *fakeCatalogRepo
	service *Service
}

func newFixture() *fixture {
	repo := newFakeCatalogRepo()
	identity := &fakeIdentityClient{
		users: map[int64]*identityClient.User{
			5: {ID: 5, Role: ptr.Ptr(identityClient.RoleManager)},
			6: {ID: 6, Role: ptr.Ptr(identityClient.RoleClient)},
		},
	}
	return &fixture{
		repo:    repo,
		service: NewService(repo, identity, nopLogger{}),
	}
}

func (f *fixture) seedService() *domain.Service {
	s := &domain.Service{
		ID:                1,
		Name:              "Full Groom",
		DurationMinutes:   90,
		AllowedStartTimes: "09:00,11:30,14:00",
		IsActive:          true,
	}
	f.repo.services[1] = s
	return s
}

func createRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		UserID:            5,
		Name:              "Puppy Trim",
		DurationMinutes:   45,
		AllowedStartTimes: "10:00,15:00",
	}
}

func TestCreateService(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()

		resp, err := f.service.CreateService(context.Background(), createRequest())
		require.NoError(t, err)

		assert.Equal(t, "Puppy Trim", resp.Name)
		assert.True(t, resp.IsActive, "new services start active")
		assert.Equal(t, []string{"10:00", "15:00"}, resp.AllowedStartTimes)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		f := newFixture()
		req := createRequest()
		req.Name = "  Puppy Trim  "

		resp, err := f.service.CreateService(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Puppy Trim", resp.Name)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		f := newFixture()
		req := createRequest()
		req.UserID = 6

		_, err := f.service.CreateService(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newFixture()
		f.repo.createErr = catalogRepo.ErrDuplicateService

		_, err := f.service.CreateService(context.Background(), createRequest())
		assert.ErrorIs(t, err, ErrDuplicateService)
	})
}

func TestCreateService_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CreateServiceRequest)
	}{
		{"empty name", func(r *models.CreateServiceRequest) { r.Name = "   " }},
		{"duration below minimum", func(r *models.CreateServiceRequest) { r.DurationMinutes = domain.MinServiceDurationMinutes - 1 }},
		{"duration above maximum", func(r *models.CreateServiceRequest) { r.DurationMinutes = domain.MaxServiceDurationMinutes + 1 }},
		{"no parsable start times", func(r *models.CreateServiceRequest) { r.AllowedStartTimes = "soon,25:00" }},
		{"empty start times", func(r *models.CreateServiceRequest) { r.AllowedStartTimes = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			req := createRequest()
			tc.mutate(req)

			_, err := f.service.CreateService(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateService(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.seedService()

		resp, err := f.service.UpdateService(context.Background(), &models.UpdateServiceRequest{
			UserID:            5,
			ServiceID:         1,
			Name:              "Full Groom Deluxe",
			DurationMinutes:   120,
			AllowedStartTimes: "09:00,13:00",
			IsActive:          true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Full Groom Deluxe", resp.Name)
		assert.Equal(t, 120, resp.DurationMinutes)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.UpdateService(context.Background(), &models.UpdateServiceRequest{
			UserID:            5,
			ServiceID:         9,
			Name:              "Ghost",
			DurationMinutes:   60,
			AllowedStartTimes: "09:00",
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestSetServiceActive(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		f := newFixture()
		f.seedService()

		err := f.service.SetServiceActive(context.Background(), 5, 1, false)
		require.NoError(t, err)
		assert.False(t, f.repo.services[1].IsActive)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		f := newFixture()
		f.seedService()

		err := f.service.SetServiceActive(context.Background(), 6, 1, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestSetPrice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.seedService()

		err := f.service.SetPrice(context.Background(), &models.SetPriceRequest{
			UserID: 5, ServiceID: 1, Size: "medium", Price: 49.99,
		})
		require.NoError(t, err)

		require.NotNil(t, f.repo.upserted)
		assert.Equal(t, domain.SizeMedium, f.repo.upserted.Size)
		assert.InDelta(t, 49.99, f.repo.upserted.Price, 0.001)
	})

	t.Run("invalid size", func(t *testing.T) {
		f := newFixture()
		f.seedService()

		err := f.service.SetPrice(context.Background(), &models.SetPriceRequest{
			UserID: 5, ServiceID: 1, Size: "enormous", Price: 49.99,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("price out of range", func(t *testing.T) {
		f := newFixture()
		f.seedService()

		for _, price := range []float64{0, -1, domain.MaxServicePrice + 1} {
			err := f.service.SetPrice(context.Background(), &models.SetPriceRequest{
				UserID: 5, ServiceID: 1, Size: "small", Price: price,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()

		err := f.service.SetPrice(context.Background(), &models.SetPriceRequest{
			UserID: 5, ServiceID: 9, Size: "small", Price: 20,
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestGetService(t *testing.T) {
	f := newFixture()
	f.seedService()

	resp, err := f.service.GetService(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:30", "14:00"}, resp.AllowedStartTimes)

	_, err = f.service.GetService(context.Background(), 9)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListServices_ActiveFilter(t *testing.T) {
	f := newFixture()
	f.seedService()
	f.repo.services[2] = &domain.Service{
		ID: 2, Name: "Retired Cut", DurationMinutes: 30, AllowedStartTimes: "09:00", IsActive: false,
	}

	active, err := f.service.ListServices(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, active.Total)

	all, err := f.service.ListServices(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestGetPrice(t *testing.T) {
	f := newFixture()
	f.seedService()
	f.repo.prices[1] = []*domain.ServicePrice{
		{ServiceID: 1, Size: domain.SizeMedium, Price: 50},
	}

	t.Run("configured size", func(t *testing.T) {
		resp, err := f.service.GetPrice(context.Background(), 1, "medium")
		require.NoError(t, err)
		assert.InDelta(t, 50.0, resp.Price, 0.001)
	})

	t.Run("unconfigured size has no fallback", func(t *testing.T) {
		_, err := f.service.GetPrice(context.Background(), 1, "large")
		assert.ErrorIs(t, err, ErrPriceNotFound)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := f.service.GetPrice(context.Background(), 1, "Medium")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetPrices(t *testing.T) {
	f := newFixture()
	f.seedService()
	f.repo.prices[1] = []*domain.ServicePrice{
		{ServiceID: 1, Size: domain.SizeSmall, Price: 40},
		{ServiceID: 1, Size: domain.SizeMedium, Price: 50},
	}

	resp, err := f.service.GetPrices(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	_, err = f.service.GetPrices(context.Background(), 9)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
