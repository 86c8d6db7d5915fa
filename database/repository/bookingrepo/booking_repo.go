package bookingrepo

import (
	"context"
	"errors"

	"spacehub/database"
	"spacehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ErrStateConflict is returned when a guarded update matched no document
// because the booking's payment status changed underneath the caller.
var ErrStateConflict = errors.New("booking payment state changed concurrently")

// Filter narrows booking listings.
type Filter struct {
	Status        string
	PaymentStatus string
	SeekerID      string
	PartnerID     string
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter Filter) ([]models.Booking, error)
	Create(ctx context.Context, booking models.Booking) (string, error)
	UpdateStatus(ctx context.Context, id, status string, refundRequired bool) (*models.Booking, error)
	// MarkRefunded flips payment status paid -> refunded with a conditional
	// update so that at most one caller can ever win for a given booking.
	// Losers get ErrStateConflict.
	MarkRefunded(ctx context.Context, id string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
