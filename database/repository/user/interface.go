// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("user: not found")

// UserRepository persists the thin identity records behind the checkout gate.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user models.User) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a MongoDB-backed UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{coll: database.DB().Collection("users")}
}
