package adminrepo

import (
	"context"
	"errors"

	"spacehub/database"
	"spacehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no admin matches the given lookup.
var ErrNotFound = errors.New("admin not found")

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo returns a new AdminRepository instance using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	return &mongoAdminRepo{
		coll: database.DB().Collection("admins"),
	}
}
