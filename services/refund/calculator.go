package refund

import (
	"fmt"

	"spacehub/models"
	"spacehub/services/ledger"
)

// QuoteInput is the operator's refund selection.
type QuoteInput struct {
	Type         string  `json:"type"`
	Reason       string  `json:"reason"`
	Notes        string  `json:"notes"`
	CustomAmount float64 `json:"custom_amount"` // used only for partial refunds
}

// ComputeQuote computes the refund owed for a booking and refund-type
// selection. It is a pure function over its inputs: calling it twice with
// identical inputs yields an identical quote, and nothing is persisted.
func ComputeQuote(booking models.Booking, in QuoteInput) (*models.RefundQuote, error) {
	if booking.PaymentStatus == models.PaymentStatusRefunded {
		return nil, &AlreadyRefundedError{BookingID: booking.ID}
	}
	if in.Reason == "" {
		return nil, newValidationError("reason_required", "a refund reason must be selected")
	}
	if !models.IsValidRefundReason(in.Reason) {
		return nil, newValidationError("reason_invalid", "unknown refund reason %q", in.Reason)
	}

	breakdown := ledger.ComputeBreakdown(booking)

	var seekerRefund, partnerRefund float64
	switch in.Type {
	case models.RefundTypeFull:
		seekerRefund = booking.TotalPaid
	case models.RefundTypeServiceFeeOnly:
		seekerRefund = booking.ServiceFee
	case models.RefundTypePartial:
		if in.CustomAmount <= 0 {
			return nil, newValidationError("amount_positive", "refund amount must be greater than zero")
		}
		if in.CustomAmount > booking.TotalPaid {
			return nil, newValidationError("amount_exceeds_total",
				"refund amount %.2f exceeds booking total %.2f", in.CustomAmount, booking.TotalPaid)
		}
		seekerRefund = in.CustomAmount
	case models.RefundTypeSplit5050:
		// The platform retains its full fee; the remaining principal is split
		// evenly between seeker and partner.
		half := (booking.TotalPaid - breakdown.PlatformFee) / 2
		seekerRefund = half
		partnerRefund = half
	default:
		return nil, newValidationError("type_invalid", "unknown refund type %q", in.Type)
	}

	totalRefund := seekerRefund + partnerRefund
	if totalRefund <= 0 {
		return nil, newValidationError("amount_positive",
			"computed refund for type %q is not positive", in.Type)
	}
	if totalRefund > booking.TotalPaid {
		return nil, newValidationError("amount_exceeds_total",
			"total refund %.2f exceeds booking total %.2f", totalRefund, booking.TotalPaid)
	}

	return &models.RefundQuote{
		Type:          in.Type,
		SeekerRefund:  seekerRefund,
		PartnerRefund: partnerRefund,
		TotalRefund:   totalRefund,
		Reason:        in.Reason,
		Notes:         in.Notes,
	}, nil
}

// DescribeQuote renders a short human-readable summary for notifications.
func DescribeQuote(q models.RefundQuote, currency string) string {
	if q.Type == models.RefundTypeSplit5050 {
		return fmt.Sprintf("Refund of %s %.2f to you (platform fee retained, remainder split)",
			currency, ledger.Round(q.SeekerRefund))
	}
	return fmt.Sprintf("Refund of %s %.2f to you", currency, ledger.Round(q.SeekerRefund))
}
