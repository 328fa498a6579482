package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
)

const (
	salonCachePrefix = "salon:"
	salonCacheTTL    = 5 * time.Minute
)

// CatalogService exposes the salon catalog to the public API and the admin
// panel. Reads are what the booking flow consumes; mutations are admin-only.
type CatalogService interface {
	SalonBySlug(ctx context.Context, slug string) (*models.Salon, error)
	ActiveServices(ctx context.Context, salonID string) ([]models.Service, error)
	ActiveStylists(ctx context.Context, salonID string) ([]models.Stylist, error)

	CreateSalon(ctx context.Context, salon *models.Salon) error

	ListServices(ctx context.Context, salonID string) ([]models.Service, error)
	CreateService(ctx context.Context, salonID string, svc models.Service) (string, error)
	UpdateService(ctx context.Context, salonID string, svc models.Service) error
	SetServiceActive(ctx context.Context, salonID, serviceID string, active bool) error

	ListStylists(ctx context.Context, salonID string) ([]models.Stylist, error)
	CreateStylist(ctx context.Context, salonID string, st models.Stylist) (string, error)
	UpdateStylist(ctx context.Context, salonID string, st models.Stylist) error
	SetStylistActive(ctx context.Context, salonID, stylistID string, active bool) error
}

// DefaultCatalogService implements CatalogService with a Mongo repository
// and a short-lived Redis cache for the hot salon-by-slug lookup.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Cache  *redis.Client // optional; nil disables caching
	Logger *zap.Logger
}

func (s *DefaultCatalogService) SalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, salonCachePrefix+slug).Result(); err == nil {
			var salon models.Salon
			if err := json.Unmarshal([]byte(data), &salon); err == nil {
				return &salon, nil
			}
			s.Logger.Warn("dropping unparsable cached salon", zap.String("slug", slug))
		}
	}

	salon, err := s.Repo.GetSalonBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(salon); err == nil {
			if err := s.Cache.Set(ctx, salonCachePrefix+slug, data, salonCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache salon", zap.String("slug", slug), zap.Error(err))
			}
		}
	}
	return salon, nil
}

func (s *DefaultCatalogService) ActiveServices(ctx context.Context, salonID string) ([]models.Service, error) {
	return s.Repo.ListActiveServices(ctx, salonID)
}

func (s *DefaultCatalogService) ActiveStylists(ctx context.Context, salonID string) ([]models.Stylist, error) {
	return s.Repo.ListActiveStylists(ctx, salonID)
}

func (s *DefaultCatalogService) CreateSalon(ctx context.Context, salon *models.Salon) error {
	if salon.Slug == "" || salon.Name == "" {
		return fmt.Errorf("salon slug and name are required")
	}
	if salon.TaxRate < 0 || salon.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be in [0, 1)")
	}
	return s.Repo.CreateSalon(ctx, *salon)
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, salonID string) ([]models.Service, error) {
	return s.Repo.ListServices(ctx, salonID)
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, salonID string, svc models.Service) (string, error) {
	if err := validateService(svc); err != nil {
		return "", err
	}
	return s.Repo.CreateService(ctx, salonID, svc)
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, salonID string, svc models.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	return s.Repo.UpdateService(ctx, salonID, svc)
}

func (s *DefaultCatalogService) SetServiceActive(ctx context.Context, salonID, serviceID string, active bool) error {
	return s.Repo.SetServiceActive(ctx, salonID, serviceID, active)
}

func (s *DefaultCatalogService) ListStylists(ctx context.Context, salonID string) ([]models.Stylist, error) {
	return s.Repo.ListStylists(ctx, salonID)
}

func (s *DefaultCatalogService) CreateStylist(ctx context.Context, salonID string, st models.Stylist) (string, error) {
	if st.Name == "" {
		return "", fmt.Errorf("stylist name is required")
	}
	return s.Repo.CreateStylist(ctx, salonID, st)
}

func (s *DefaultCatalogService) UpdateStylist(ctx context.Context, salonID string, st models.Stylist) error {
	if st.Name == "" {
		return fmt.Errorf("stylist name is required")
	}
	return s.Repo.UpdateStylist(ctx, salonID, st)
}

func (s *DefaultCatalogService) SetStylistActive(ctx context.Context, salonID, stylistID string, active bool) error {
	return s.Repo.SetStylistActive(ctx, salonID, stylistID, active)
}

func validateService(svc models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price cannot be negative")
	}
	if svc.Duration <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	return nil
}
