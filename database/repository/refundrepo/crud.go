package refundrepo

import (
	"context"
	"time"

	"spacehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new refund record and returns its ID.
func (r *mongoRefundRepo) Create(ctx context.Context, record models.RefundRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.ProcessedAt.IsZero() {
		record.ProcessedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByBookingID fetches all refund records for a specific booking.
func (r *mongoRefundRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.RefundRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.RefundRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// List returns all refund records, newest first.
func (r *mongoRefundRepo) List(ctx context.Context) ([]models.RefundRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "processed_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.RefundRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
