package notificationrepo

import (
	"context"
	"errors"
	"time"

	"spacehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new pending notification and returns its ID.
func (r *mongoNotificationRepo) Create(ctx context.Context, n models.Notification) (string, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.Status = models.NotificationStatusPending
	n.CreatedAt = time.Now()
	n.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// GetByID returns a notification by its ID.
func (r *mongoNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New("notification not found")
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkSent flags a notification as delivered.
func (r *mongoNotificationRepo) MarkSent(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{
		"status":     models.NotificationStatusSent,
		"updated_at": time.Now(),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	return err
}

// MarkAttempt increments the attempt counter and records the delivery error.
func (r *mongoNotificationRepo) MarkAttempt(ctx context.Context, id string, attemptErr string, terminal bool) error {
	set := bson.M{
		"last_error": attemptErr,
		"updated_at": time.Now(),
	}
	if terminal {
		set["status"] = models.NotificationStatusFailed
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"attempts": 1},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	return err
}

// List returns notifications, optionally filtered by delivery status.
func (r *mongoNotificationRepo) List(ctx context.Context, status string) ([]models.Notification, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
