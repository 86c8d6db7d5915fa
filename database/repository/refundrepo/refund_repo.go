package refundrepo

import (
	"context"

	"spacehub/database"
	"spacehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RefundRecordRepository persists completed refund actions. Records are
// insert-only; there is no update path.
type RefundRecordRepository interface {
	Create(ctx context.Context, record models.RefundRecord) (string, error)
	GetByBookingID(ctx context.Context, bookingID string) ([]models.RefundRecord, error)
	List(ctx context.Context) ([]models.RefundRecord, error)
}

type mongoRefundRepo struct {
	coll *mongo.Collection
}

// NewMongoRefundRepo returns a new RefundRecordRepository instance using MongoDB.
func NewMongoRefundRepo() RefundRecordRepository {
	return &mongoRefundRepo{
		coll: database.DB().Collection("refund_records"),
	}
}
