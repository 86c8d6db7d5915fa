package bookingrepo

import (
	"context"
	"time"

	"spacehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns bookings matching the filter, newest first.
func (r *mongoBookingRepo) List(ctx context.Context, filter Filter) ([]models.Booking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PaymentStatus != "" {
		query["payment_status"] = filter.PaymentStatus
	}
	if filter.SeekerID != "" {
		query["seeker_id"] = filter.SeekerID
	}
	if filter.PartnerID != "" {
		query["partner_id"] = filter.PartnerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// UpdateStatus sets the booking status and, when requested, the
// refund-required flag. Transition legality is the status machine's job;
// this is a plain persisted write.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string, refundRequired bool) (*models.Booking, error) {
	update := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if refundRequired {
		update["refund_required"] = true
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkRefunded performs the guarded paid -> refunded flip. The payment_status
// guard in the query makes the update atomic: a concurrent refund that
// already won leaves no matching document, and the caller gets
// ErrStateConflict instead of a second write.
func (r *mongoBookingRepo) MarkRefunded(ctx context.Context, id string) (*models.Booking, error) {
	filter := bson.M{
		"id":             id,
		"payment_status": models.PaymentStatusPaid,
	}
	update := bson.M{"$set": bson.M{
		"payment_status":  models.PaymentStatusRefunded,
		"refund_required": false,
		"updated_at":      time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Either the booking does not exist or its payment status moved on.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStateConflict
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
