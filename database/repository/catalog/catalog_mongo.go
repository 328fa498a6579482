// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonbook/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoCatalogRepo) GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var salon models.Salon
	err := r.salons.FindOne(ctx, bson.M{"slug": slug}).Decode(&salon)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon by slug: %w", err)
	}
	return &salon, nil
}

func (r *mongoCatalogRepo) GetSalonByID(ctx context.Context, salonID string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var salon models.Salon
	err := r.salons.FindOne(ctx, bson.M{"id": salonID}).Decode(&salon)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon: %w", err)
	}
	return &salon, nil
}

func (r *mongoCatalogRepo) CreateSalon(ctx context.Context, salon models.Salon) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if salon.ID == "" {
		salon.ID = uuid.New().String()
	}
	salon.CreatedAt = time.Now()
	if _, err := r.salons.InsertOne(ctx, salon); err != nil {
		return fmt.Errorf("failed to insert salon: %w", err)
	}
	return nil
}

// ListActiveServices returns the customer-facing catalog: active services
// ordered by their explicit display order.
func (r *mongoCatalogRepo) ListActiveServices(ctx context.Context, salonID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"salonId": salonID, "active": true}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.services.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *mongoCatalogRepo) ListActiveStylists(ctx context.Context, salonID string) ([]models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.stylists.Find(ctx, bson.M{"salonId": salonID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylists: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("error decoding stylists: %w", err)
	}
	return stylists, nil
}

func (r *mongoCatalogRepo) ListServices(ctx context.Context, salonID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{"salonId": salonID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *mongoCatalogRepo) CreateService(ctx context.Context, salonID string, svc models.Service) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	doc := bson.M{
		"id": svc.ID, "salonId": salonID, "name": svc.Name,
		"description": svc.Description, "price": svc.Price, "duration": svc.Duration,
		"category": svc.Category, "image": svc.Image, "featured": svc.Featured,
		"order": svc.Order, "active": svc.Active,
	}
	if _, err := r.services.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert service: %w", err)
	}
	return svc.ID, nil
}

func (r *mongoCatalogRepo) UpdateService(ctx context.Context, salonID string, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": svc.ID, "salonId": salonID}
	update := bson.M{"$set": bson.M{
		"name": svc.Name, "description": svc.Description, "price": svc.Price,
		"duration": svc.Duration, "category": svc.Category, "image": svc.Image,
		"featured": svc.Featured, "order": svc.Order, "active": svc.Active,
	}}
	res, err := r.services.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCatalogRepo) SetServiceActive(ctx context.Context, salonID, serviceID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": serviceID, "salonId": salonID}
	res, err := r.services.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCatalogRepo) ListStylists(ctx context.Context, salonID string) ([]models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.stylists.Find(ctx, bson.M{"salonId": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylists: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("error decoding stylists: %w", err)
	}
	return stylists, nil
}

func (r *mongoCatalogRepo) CreateStylist(ctx context.Context, salonID string, st models.Stylist) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	doc := bson.M{
		"id": st.ID, "salonId": salonID, "name": st.Name, "specialty": st.Specialty,
		"bio": st.Bio, "avatar": st.Avatar, "serviceIds": st.ServiceIDs, "active": st.Active,
	}
	if _, err := r.stylists.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert stylist: %w", err)
	}
	return st.ID, nil
}

func (r *mongoCatalogRepo) UpdateStylist(ctx context.Context, salonID string, st models.Stylist) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": st.ID, "salonId": salonID}
	update := bson.M{"$set": bson.M{
		"name": st.Name, "specialty": st.Specialty, "bio": st.Bio,
		"avatar": st.Avatar, "serviceIds": st.ServiceIDs, "active": st.Active,
	}}
	res, err := r.stylists.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update stylist: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCatalogRepo) SetStylistActive(ctx context.Context, salonID, stylistID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": stylistID, "salonId": salonID}
	res, err := r.stylists.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("failed to update stylist: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
