package models

import "time"

// Listing moderation states.
const (
	ListingStatusPending   = "pending"
	ListingStatusApproved  = "approved"
	ListingStatusRejected  = "rejected"
	ListingStatusSuspended = "suspended"
)

// Listing represents a space listed by a partner, as seen by moderation.
type Listing struct {
	ID              string    `bson:"id" json:"id"`
	PartnerID       string    `bson:"partner_id" json:"partner_id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	City            string    `bson:"city,omitempty" json:"city,omitempty"`
	PricePerDay     float64   `bson:"price_per_day" json:"price_per_day"`
	Status          string    `bson:"status" json:"status"`
	ModerationNotes string    `bson:"moderation_notes,omitempty" json:"moderation_notes,omitempty"`
	ModeratedBy     string    `bson:"moderated_by,omitempty" json:"moderated_by,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
