package listingrepo

import (
	"context"
	"errors"

	"spacehub/database"
	"spacehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no listing matches the given id.
var ErrNotFound = errors.New("listing not found")

type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	List(ctx context.Context, status string) ([]models.Listing, error)
	Moderate(ctx context.Context, id, status, notes, adminID string) (*models.Listing, error)
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo returns a new ListingRepository instance using MongoDB.
func NewMongoListingRepo() ListingRepository {
	return &mongoListingRepo{
		coll: database.DB().Collection("listings"),
	}
}
