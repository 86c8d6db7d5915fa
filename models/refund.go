package models

import "time"

// Refund types supported by the admin console.
const (
	RefundTypeFull           = "full"
	RefundTypePartial        = "partial"
	RefundTypeServiceFeeOnly = "service_fee_only"
	RefundTypeSplit5050      = "split_50_50"
)

// Refund reasons an operator can select.
const (
	RefundReasonGuestRequest     = "guest_request"
	RefundReasonHostCancellation = "host_cancellation"
	RefundReasonPropertyIssue    = "property_issue"
	RefundReasonSystemError      = "system_error"
	RefundReasonOther            = "other"
)

// RefundReasons lists every valid refund reason.
func RefundReasons() []string {
	return []string{
		RefundReasonGuestRequest,
		RefundReasonHostCancellation,
		RefundReasonPropertyIssue,
		RefundReasonSystemError,
		RefundReasonOther,
	}
}

// IsValidRefundReason checks whether the given reason is in the enumerated set.
func IsValidRefundReason(reason string) bool {
	for _, r := range RefundReasons() {
		if r == reason {
			return true
		}
	}
	return false
}

// RefundQuote is the computed refund for a booking and refund-type selection.
// It is a value object; nothing is persisted until the refund is processed.
type RefundQuote struct {
	Type          string  `json:"type"`
	SeekerRefund  float64 `json:"seeker_refund"`
	PartnerRefund float64 `json:"partner_refund,omitempty"` // present only for split refunds
	TotalRefund   float64 `json:"total_refund"`
	Reason        string  `json:"reason"`
	Notes         string  `json:"notes,omitempty"`
}

// RefundRecord represents one completed refund action. Records are immutable
// once persisted; corrections require a new record, never an edit.
type RefundRecord struct {
	ID                         string    `bson:"id" json:"id"`
	BookingID                  string    `bson:"booking_id" json:"booking_id"`
	Type                       string    `bson:"type" json:"type"`
	Reason                     string    `bson:"reason" json:"reason"`
	Notes                      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	SeekerRefundAmount         float64   `bson:"seeker_refund_amount" json:"seeker_refund_amount"`
	PartnerRefundAmount        float64   `bson:"partner_refund_amount,omitempty" json:"partner_refund_amount,omitempty"`
	TotalRefunded              float64   `bson:"total_refunded" json:"total_refunded"`
	ExternalRefundID           string    `bson:"external_refund_id" json:"external_refund_id"`
	ExternalTransferReversalID string    `bson:"external_transfer_reversal_id,omitempty" json:"external_transfer_reversal_id,omitempty"`
	ProcessedBy                string    `bson:"processed_by" json:"processed_by"` // admin operator id
	ProcessedAt                time.Time `bson:"processed_at" json:"processed_at"`
}
