package ledger

import (
	"math"

	"spacehub/models"
)

// ComputeBreakdown derives a booking's fee ledger from its persisted numeric
// fields. It never fails: absent fields are zero-valued in the source row and
// simply flow through as zeros. No rounding happens here; callers round once
// at the display or gateway boundary via Round.
func ComputeBreakdown(booking models.Booking) models.FeeBreakdown {
	return models.FeeBreakdown{
		BaseAmount:    booking.BaseAmount,
		ServiceFee:    booking.ServiceFee,
		ProcessingFee: booking.ProcessingFee,
		PlatformFee:   booking.ServiceFee + booking.ProcessingFee + booking.CommissionPartner,
		HostPayout:    booking.BaseAmount - booking.CommissionPartner,
	}
}

// Round rounds a monetary amount to 2 decimal places.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// RoundBreakdown returns a copy of the breakdown with every field rounded to
// 2 decimal places, for display.
func RoundBreakdown(b models.FeeBreakdown) models.FeeBreakdown {
	return models.FeeBreakdown{
		BaseAmount:    Round(b.BaseAmount),
		ServiceFee:    Round(b.ServiceFee),
		ProcessingFee: Round(b.ProcessingFee),
		PlatformFee:   Round(b.PlatformFee),
		HostPayout:    Round(b.HostPayout),
	}
}

// ToCents converts a dollar amount to integer cents for the payment gateway.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
