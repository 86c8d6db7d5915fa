package auditrepo

import (
	"context"
	"time"

	"spacehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record inserts a new audit event and returns its ID.
func (r *mongoAuditRepo) Record(ctx context.Context, event models.AuditEvent) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// List returns audit events, newest first, optionally filtered by severity.
func (r *mongoAuditRepo) List(ctx context.Context, severity string, limit int64) ([]models.AuditEvent, error) {
	query := bson.M{}
	if severity != "" {
		query["severity"] = severity
	}
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
