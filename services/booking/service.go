package booking

import (
	"context"
	"fmt"

	"spacehub/database/repository/bookingrepo"
	"spacehub/models"
	"spacehub/services/ledger"
	"spacehub/services/refund"
)

// GetBooking returns a booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return booking, nil
}

// ListBookings returns bookings matching the filter.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter bookingrepo.Filter) ([]models.Booking, error) {
	return s.Repo.List(ctx, filter)
}

// GetBreakdown recomputes the fee ledger for a booking, rounded for display.
func (s *DefaultBookingService) GetBreakdown(ctx context.Context, id string) (*models.FeeBreakdown, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	breakdown := ledger.RoundBreakdown(ledger.ComputeBreakdown(*booking))
	return &breakdown, nil
}

// QuoteRefund computes a refund quote for a booking without side effects.
func (s *DefaultBookingService) QuoteRefund(ctx context.Context, id string, in refund.QuoteInput) (*models.RefundQuote, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return refund.ComputeQuote(*booking, in)
}
