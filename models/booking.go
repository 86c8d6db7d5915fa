package models

import "time"

// Booking statuses. Completed and Cancelled are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses. Refunded and Failed are terminal.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// Booking represents one space reservation.
// Invariant: TotalPaid == BaseAmount + ServiceFee + ProcessingFee;
// the partner commission is drawn from BaseAmount, not additive.
type Booking struct {
	ID                string    `bson:"id" json:"id"`
	Status            string    `bson:"status" json:"status"`
	PaymentStatus     string    `bson:"payment_status" json:"payment_status"`
	BaseAmount        float64   `bson:"base_amount" json:"base_amount"`
	ServiceFee        float64   `bson:"service_fee" json:"service_fee"`
	ProcessingFee     float64   `bson:"processing_fee" json:"processing_fee"`
	CommissionPartner float64   `bson:"commission_partner" json:"commission_partner"`
	TotalPaid         float64   `bson:"total_paid" json:"total_paid"`
	Currency          string    `bson:"currency" json:"currency"`
	SeekerID          string    `bson:"seeker_id" json:"seeker_id"`
	PartnerID         string    `bson:"partner_id" json:"partner_id"`
	ListingID         string    `bson:"listing_id" json:"listing_id"`
	ChargeID          string    `bson:"charge_id" json:"charge_id"`                               // payment intent the seeker was charged on
	TransferID        string    `bson:"transfer_id,omitempty" json:"transfer_id,omitempty"`       // payout transfer to the partner, if any
	RefundRequired    bool      `bson:"refund_required,omitempty" json:"refund_required,omitempty"` // set when a paid booking is cancelled
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// FeeBreakdown is the computed view of a booking's fee ledger. It is never
// persisted; it is always recomputed from the booking's stored fee fields.
type FeeBreakdown struct {
	BaseAmount    float64 `json:"base_amount"`
	ServiceFee    float64 `json:"service_fee"`
	ProcessingFee float64 `json:"processing_fee"`
	PlatformFee   float64 `json:"platform_fee"`
	HostPayout    float64 `json:"host_payout"`
}
