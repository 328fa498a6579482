package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
)

type fakeCatalogRepo struct {
	salons   map[string]models.Salon
	services map[string][]models.Service
	stylists map[string][]models.Stylist
}

func newFakeRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		salons:   make(map[string]models.Salon),
		services: make(map[string][]models.Service),
		stylists: make(map[string][]models.Stylist),
	}
}

func (f *fakeCatalogRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.Slug == slug {
			salon := s
			return &salon, nil
		}
	}
	return nil, catalogRepo.ErrNotFound
}

func (f *fakeCatalogRepo) GetSalonByID(_ context.Context, id string) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &s, nil
}

func (f *fakeCatalogRepo) CreateSalon(_ context.Context, salon models.Salon) error {
	f.salons[salon.ID] = salon
	return nil
}

func (f *fakeCatalogRepo) ListActiveServices(_ context.Context, salonID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services[salonID] {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListActiveStylists(_ context.Context, salonID string) ([]models.Stylist, error) {
	var out []models.Stylist
	for _, s := range f.stylists[salonID] {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListServices(_ context.Context, salonID string) ([]models.Service, error) {
	return f.services[salonID], nil
}

func (f *fakeCatalogRepo) CreateService(_ context.Context, salonID string, svc models.Service) (string, error) {
	f.services[salonID] = append(f.services[salonID], svc)
	return svc.ID, nil
}

func (f *fakeCatalogRepo) UpdateService(_ context.Context, salonID string, svc models.Service) error {
	for i, s := range f.services[salonID] {
		if s.ID == svc.ID {
			f.services[salonID][i] = svc
			return nil
		}
	}
	return catalogRepo.ErrNotFound
}

func (f *fakeCatalogRepo) SetServiceActive(_ context.Context, salonID, serviceID string, active bool) error {
	for i, s := range f.services[salonID] {
		if s.ID == serviceID {
			f.services[salonID][i].Active = active
			return nil
		}
	}
	return catalogRepo.ErrNotFound
}

func (f *fakeCatalogRepo) ListStylists(_ context.Context, salonID string) ([]models.Stylist, error) {
	return f.stylists[salonID], nil
}

func (f *fakeCatalogRepo) CreateStylist(_ context.Context, salonID string, st models.Stylist) (string, error) {
	f.stylists[salonID] = append(f.stylists[salonID], st)
	return st.ID, nil
}

func (f *fakeCatalogRepo) UpdateStylist(_ context.Context, salonID string, st models.Stylist) error {
	for i, s := range f.stylists[salonID] {
		if s.ID == st.ID {
			f.stylists[salonID][i] = st
			return nil
		}
	}
	return catalogRepo.ErrNotFound
}

func (f *fakeCatalogRepo) SetStylistActive(_ context.Context, salonID, stylistID string, active bool) error {
	for i, s := range f.stylists[salonID] {
		if s.ID == stylistID {
			f.stylists[salonID][i].Active = active
			return nil
		}
	}
	return catalogRepo.ErrNotFound
}

func testService(repo catalogRepo.CatalogRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}
}

func TestSalonBySlug(t *testing.T) {
	repo := newFakeRepo()
	repo.salons["glamour-studio"] = models.Salon{ID: "glamour-studio", Slug: "glamour-studio", Name: "Glamour Studio"}
	svc := testService(repo)

	salon, err := svc.SalonBySlug(context.Background(), "glamour-studio")
	require.NoError(t, err)
	assert.Equal(t, "Glamour Studio", salon.Name)

	_, err = svc.SalonBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, catalogRepo.ErrNotFound)
}

func TestActiveServicesFiltersInactive(t *testing.T) {
	repo := newFakeRepo()
	repo.services["glamour-studio"] = []models.Service{
		{ID: "haircut", Name: "Corte", Price: 30, Duration: 45, Active: true},
		{ID: "retired", Name: "Retired", Price: 10, Duration: 15, Active: false},
	}
	svc := testService(repo)

	active, err := svc.ActiveServices(context.Background(), "glamour-studio")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "haircut", active[0].ID)

	all, err := svc.ListServices(context.Background(), "glamour-studio")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateServiceValidation(t *testing.T) {
	svc := testService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateService(ctx, "glamour-studio", models.Service{Name: "", Price: 10, Duration: 30})
	assert.Error(t, err)

	_, err = svc.CreateService(ctx, "glamour-studio", models.Service{Name: "Corte", Price: -1, Duration: 30})
	assert.Error(t, err)

	_, err = svc.CreateService(ctx, "glamour-studio", models.Service{Name: "Corte", Price: 10, Duration: 0})
	assert.Error(t, err)

	_, err = svc.CreateService(ctx, "glamour-studio", models.Service{ID: "haircut", Name: "Corte", Price: 10, Duration: 30})
	assert.NoError(t, err)
}

func TestCreateSalonValidation(t *testing.T) {
	svc := testService(newFakeRepo())
	ctx := context.Background()

	err := svc.CreateSalon(ctx, &models.Salon{Name: "No Slug"})
	assert.Error(t, err)

	err = svc.CreateSalon(ctx, &models.Salon{Slug: "x", Name: "X", TaxRate: 1.5})
	assert.Error(t, err)

	err = svc.CreateSalon(ctx, &models.Salon{ID: "x", Slug: "x", Name: "X", TaxRate: 0.18})
	assert.NoError(t, err)
}

func TestSetStylistActive(t *testing.T) {
	repo := newFakeRepo()
	repo.stylists["glamour-studio"] = []models.Stylist{
		{ID: "ava-bennett", Name: "Ava Bennett", Active: true},
	}
	svc := testService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SetStylistActive(ctx, "glamour-studio", "ava-bennett", false))
	active, err := svc.ActiveStylists(ctx, "glamour-studio")
	require.NoError(t, err)
	assert.Empty(t, active)
}
