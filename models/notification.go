package models

import "time"

// Notification delivery states for the async queue.
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed" // terminal, retries exhausted
)

// Notification types emitted by the booking workflow.
const (
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationRefundIssued     = "refund_issued"
	NotificationPayoutReversed   = "payout_reversed"
)

// Notification is one queued message to a user. Delivery is asynchronous and
// at-least-once; Attempts tracks retries up to the queue's maximum.
type Notification struct {
	ID           string            `bson:"id" json:"id"`
	Type         string            `bson:"type" json:"type"`
	TargetUserID string            `bson:"target_user_id" json:"target_user_id"`
	Title        string            `bson:"title" json:"title"`
	Body         string            `bson:"body" json:"body"`
	Data         map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Status       string            `bson:"status" json:"status"`
	Attempts     int               `bson:"attempts" json:"attempts"`
	LastError    string            `bson:"last_error,omitempty" json:"last_error,omitempty"`
	CreatedAt    time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `bson:"updated_at" json:"updated_at"`
}
