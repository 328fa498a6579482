// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// ErrNotFound is returned when a catalog document does not exist.
var ErrNotFound = errors.New("catalog: not found")

// CatalogRepository exposes the salon/service/stylist catalog. The booking
// core only ever calls the read methods; the mutation methods back the admin
// panel and the seed tool.
type CatalogRepository interface {
	GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error)
	GetSalonByID(ctx context.Context, salonID string) (*models.Salon, error)
	ListActiveServices(ctx context.Context, salonID string) ([]models.Service, error)
	ListActiveStylists(ctx context.Context, salonID string) ([]models.Stylist, error)

	CreateSalon(ctx context.Context, salon models.Salon) error

	ListServices(ctx context.Context, salonID string) ([]models.Service, error)
	CreateService(ctx context.Context, salonID string, svc models.Service) (string, error)
	UpdateService(ctx context.Context, salonID string, svc models.Service) error
	SetServiceActive(ctx context.Context, salonID, serviceID string, active bool) error

	ListStylists(ctx context.Context, salonID string) ([]models.Stylist, error)
	CreateStylist(ctx context.Context, salonID string, st models.Stylist) (string, error)
	UpdateStylist(ctx context.Context, salonID string, st models.Stylist) error
	SetStylistActive(ctx context.Context, salonID, stylistID string, active bool) error
}

type mongoCatalogRepo struct {
	salons   *mongo.Collection
	services *mongo.Collection
	stylists *mongo.Collection
}

// NewMongoCatalogRepo constructs a MongoDB-backed CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		salons:   db.Collection("salons"),
		services: db.Collection("services"),
		stylists: db.Collection("stylists"),
	}
}
