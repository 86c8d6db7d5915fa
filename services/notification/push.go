package notification

import (
	"context"
	"fmt"

	"spacehub/models"
	"spacehub/utils"

	"firebase.google.com/go/v4/messaging"
)

// Pusher delivers one notification to its target. The queue worker retries
// through this interface.
type Pusher interface {
	Push(ctx context.Context, n models.Notification) error
}

// FCMPusher sends notifications as Firebase Cloud Messaging pushes, keyed by
// the target user's id topic.
type FCMPusher struct{}

func (p *FCMPusher) Push(ctx context.Context, n models.Notification) error {
	data := map[string]string{
		"notificationId": n.ID,
		"type":           n.Type,
	}
	for k, v := range n.Data {
		data[k] = v
	}

	msg := &messaging.Message{
		Topic: "user-" + n.TargetUserID,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message for notification %s: %w", n.ID, err)
	}
	return nil
}

var _ Pusher = (*FCMPusher)(nil)
