package notificationrepo

import (
	"context"

	"spacehub/database"
	"spacehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository stores queued notifications and their delivery state.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (string, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	MarkSent(ctx context.Context, id string) error
	// MarkAttempt records a failed delivery attempt; when terminal is true the
	// notification is moved to its failed state and never retried again.
	MarkAttempt(ctx context.Context, id string, attemptErr string, terminal bool) error
	List(ctx context.Context, status string) ([]models.Notification, error)
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a new NotificationRepository instance using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
