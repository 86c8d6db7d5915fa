package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spacehub/database/repository/bookingrepo"
	"spacehub/models"
	"spacehub/services/ledger"
	"spacehub/services/refund"

	"go.uber.org/zap"
)

// ProcessRefund executes the full refund workflow for a booking:
//
//  1. recompute and validate the quote against the booking's current state,
//  2. move the money at the gateway (refund, plus a transfer reversal for
//     split refunds),
//  3. flip the booking paid -> refunded through the guarded repository
//     update and persist the immutable RefundRecord,
//  4. enqueue notifications to the affected parties.
//
// Step 3's conditional update is the serialization point: of two concurrent
// attempts on the same booking exactly one wins; the loser surfaces
// AlreadyRefundedError and never writes a record. A gateway failure in step 2
// aborts with no state change. A persistence failure after the gateway call
// is the one genuinely bad outcome (money moved, state not recorded); it is
// logged at error severity and written to the audit trail for manual
// reconciliation, never retried automatically.
func (s *DefaultBookingService) ProcessRefund(ctx context.Context, id string, in refund.QuoteInput, operatorID string) (*models.Booking, *models.RefundRecord, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if current.PaymentStatus == models.PaymentStatusRefunded {
		return nil, nil, &refund.AlreadyRefundedError{BookingID: id}
	}
	if current.PaymentStatus != models.PaymentStatusPaid {
		return nil, nil, &refund.InvalidStateError{BookingID: id, PaymentStatus: current.PaymentStatus}
	}

	quote, err := refund.ComputeQuote(*current, in)
	if err != nil {
		return nil, nil, err
	}

	// Step 2: gateway first. Nothing is persisted until the money has moved.
	metadata := map[string]string{
		"booking_id": current.ID,
		"reason":     quote.Reason,
		"operator":   operatorID,
	}
	externalRefundID, err := s.Gateway.Refund(ctx, current.ChargeID, ledger.ToCents(quote.SeekerRefund), metadata)
	if err != nil {
		return nil, nil, &refund.GatewayError{Op: "refund", Err: err}
	}

	var externalReversalID string
	if quote.Type == models.RefundTypeSplit5050 {
		externalReversalID, err = s.Gateway.ReverseTransfer(ctx, current.TransferID, ledger.ToCents(quote.PartnerRefund))
		if err != nil {
			// The seeker-side refund already went through; record the partial
			// state for reconciliation before aborting.
			s.auditReconciliation(current.ID, externalRefundID, "",
				fmt.Sprintf("transfer reversal failed after refund succeeded: %v", err))
			return nil, nil, &refund.GatewayError{Op: "transfer reversal", Err: err}
		}
	}

	// Step 3: guarded persist. The paid -> refunded flip decides the race.
	updated, err := s.Repo.MarkRefunded(ctx, current.ID)
	if err != nil {
		s.Logger.Error("Refund succeeded at gateway but booking update failed",
			zap.String("bookingId", current.ID),
			zap.String("externalRefundId", externalRefundID),
			zap.Error(err))
		s.auditReconciliation(current.ID, externalRefundID, externalReversalID, err.Error())

		if errors.Is(err, bookingrepo.ErrStateConflict) {
			return nil, nil, &refund.AlreadyRefundedError{BookingID: current.ID}
		}
		return nil, nil, &refund.PersistenceError{
			BookingID:        current.ID,
			ExternalRefundID: externalRefundID,
			Err:              err,
		}
	}

	record := models.RefundRecord{
		BookingID:                  current.ID,
		Type:                       quote.Type,
		Reason:                     quote.Reason,
		Notes:                      quote.Notes,
		SeekerRefundAmount:         ledger.Round(quote.SeekerRefund),
		PartnerRefundAmount:        ledger.Round(quote.PartnerRefund),
		TotalRefunded:              ledger.Round(quote.TotalRefund),
		ExternalRefundID:           externalRefundID,
		ExternalTransferReversalID: externalReversalID,
		ProcessedBy:                operatorID,
		ProcessedAt:                time.Now(),
	}
	recordID, err := s.RefundRepo.Create(ctx, record)
	if err != nil {
		s.Logger.Error("Refund succeeded at gateway but record insert failed",
			zap.String("bookingId", current.ID),
			zap.String("externalRefundId", externalRefundID),
			zap.Error(err))
		s.auditReconciliation(current.ID, externalRefundID, externalReversalID, err.Error())
		return nil, nil, &refund.PersistenceError{
			BookingID:        current.ID,
			ExternalRefundID: externalRefundID,
			Err:              err,
		}
	}
	record.ID = recordID

	// Step 4: notifications. Refund correctness outranks delivery.
	s.notifyRefund(ctx, updated, quote)

	s.Logger.Info("Refund processed",
		zap.String("bookingId", updated.ID),
		zap.String("type", quote.Type),
		zap.Float64("totalRefunded", record.TotalRefunded),
		zap.String("operator", operatorID))
	return updated, &record, nil
}

func (s *DefaultBookingService) notifyRefund(ctx context.Context, booking *models.Booking, quote *models.RefundQuote) {
	body := refund.DescribeQuote(*quote, booking.Currency)
	if err := s.NotificationSvc.Enqueue(ctx, models.NotificationRefundIssued, booking.SeekerID,
		"Refund issued", body, map[string]string{"bookingId": booking.ID}); err != nil {
		s.Logger.Warn("Failed to enqueue seeker refund notification",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}

	if quote.Type == models.RefundTypeSplit5050 {
		partnerBody := fmt.Sprintf("A split refund of %s %.2f was issued for booking %s.",
			booking.Currency, ledger.Round(quote.PartnerRefund), booking.ID)
		if err := s.NotificationSvc.Enqueue(ctx, models.NotificationPayoutReversed, booking.PartnerID,
			"Booking refunded", partnerBody, map[string]string{"bookingId": booking.ID}); err != nil {
			s.Logger.Warn("Failed to enqueue partner refund notification",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
}

func (s *DefaultBookingService) auditReconciliation(bookingID, externalRefundID, externalReversalID, detail string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := models.AuditEvent{
		Source:   "refund",
		Severity: models.AuditSeverityError,
		Message:  "gateway refund completed without a matching persisted state; manual reconciliation required",
		Details: map[string]any{
			"booking_id":                    bookingID,
			"external_refund_id":            externalRefundID,
			"external_transfer_reversal_id": externalReversalID,
			"error":                         detail,
		},
	}
	if _, err := s.AuditRepo.Record(ctx, event); err != nil {
		s.Logger.Error("Failed to record reconciliation audit event",
			zap.String("bookingId", bookingID), zap.Error(err))
	}
}
