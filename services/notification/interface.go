package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"spacehub/database/repository/notificationrepo"
	"spacehub/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeNotificationDeliver is the asynq task type for queued deliveries.
const TypeNotificationDeliver = "notification:deliver"

// MaxDeliveryAttempts is the at-least-once retry budget per notification.
// After the third failed attempt the notification is marked failed and
// never retried again.
const MaxDeliveryAttempts = 3

// TaskPayload is the asynq task body; delivery state lives in Mongo.
type TaskPayload struct {
	NotificationID string `json:"notification_id"`
}

// NotificationService enqueues messages for asynchronous delivery. Enqueue is
// fire-and-forget from the caller's point of view: a failed enqueue is logged
// but never fails the operation that produced the notification.
type NotificationService interface {
	Enqueue(ctx context.Context, notificationType, targetUserID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo   notificationrepo.NotificationRepository
	Client *asynq.Client
	Logger *zap.Logger
}

// Enqueue persists the notification and schedules its delivery task.
func (s *DefaultNotificationService) Enqueue(ctx context.Context, notificationType, targetUserID, title, body string, data map[string]string) error {
	n := models.Notification{
		Type:         notificationType,
		TargetUserID: targetUserID,
		Title:        title,
		Body:         body,
		Data:         data,
	}
	id, err := s.Repo.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	payload, err := json.Marshal(TaskPayload{NotificationID: id})
	if err != nil {
		return fmt.Errorf("failed to marshal notification task: %w", err)
	}

	task := asynq.NewTask(TypeNotificationDeliver, payload, asynq.MaxRetry(MaxDeliveryAttempts-1))
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue notification %s: %w", id, err)
	}

	s.Logger.Debug("Notification enqueued",
		zap.String("notificationId", id),
		zap.String("type", notificationType),
		zap.String("target", targetUserID))
	return nil
}

var _ NotificationService = (*DefaultNotificationService)(nil)
