package booking

import (
	"context"
	"fmt"

	"spacehub/models"

	"go.uber.org/zap"
)

// legalTransitions is the booking lifecycle. completed and cancelled are
// terminal: no transition leaves them.
var legalTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusCompleted: {},
	models.BookingStatusCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus validates and applies a booking status transition, then emits
// the side effects the destination state calls for. Cancelling a paid booking
// flags it as refund-required; the refund decision stays with the operator,
// nothing is refunded automatically.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error) {
	if _, known := legalTransitions[newStatus]; !known {
		return nil, fmt.Errorf("unknown booking status %q", newStatus)
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if !transitionAllowed(current.Status, newStatus) {
		return nil, &IllegalTransitionError{BookingID: id, From: current.Status, To: newStatus}
	}

	refundRequired := newStatus == models.BookingStatusCancelled &&
		current.PaymentStatus == models.PaymentStatusPaid

	updated, err := s.Repo.UpdateStatus(ctx, id, newStatus, refundRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to persist status %q for booking %s: %w", newStatus, id, err)
	}

	// Notification delivery never outranks the persisted transition; enqueue
	// failures are logged and dropped.
	switch newStatus {
	case models.BookingStatusConfirmed:
		if err := s.NotificationSvc.Enqueue(ctx, models.NotificationBookingConfirmed, updated.SeekerID,
			"Booking confirmed",
			fmt.Sprintf("Your booking %s is confirmed.", updated.ID),
			map[string]string{"bookingId": updated.ID}); err != nil {
			s.Logger.Warn("Failed to enqueue confirmation notification",
				zap.String("bookingId", updated.ID), zap.Error(err))
		}
	case models.BookingStatusCancelled:
		if err := s.NotificationSvc.Enqueue(ctx, models.NotificationBookingCancelled, updated.SeekerID,
			"Booking cancelled",
			fmt.Sprintf("Your booking %s has been cancelled.", updated.ID),
			map[string]string{"bookingId": updated.ID}); err != nil {
			s.Logger.Warn("Failed to enqueue cancellation notification",
				zap.String("bookingId", updated.ID), zap.Error(err))
		}
		if refundRequired {
			s.Logger.Info("Paid booking cancelled, refund decision required",
				zap.String("bookingId", updated.ID))
		}
	}

	return updated, nil
}
