package booking

import (
	"context"

	"spacehub/database/repository/auditrepo"
	"spacehub/database/repository/bookingrepo"
	"spacehub/database/repository/refundrepo"
	"spacehub/models"
	"spacehub/services/notification"
	"spacehub/services/payment"
	"spacehub/services/refund"

	"go.uber.org/zap"
)

// BookingService drives booking status transitions and the refund workflow.
// Booking rows and refund records are mutated only through this service so
// the fee and single-refund invariants hold.
type BookingService interface {
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter bookingrepo.Filter) ([]models.Booking, error)
	GetBreakdown(ctx context.Context, id string) (*models.FeeBreakdown, error)
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error)
	QuoteRefund(ctx context.Context, id string, in refund.QuoteInput) (*models.RefundQuote, error)
	ProcessRefund(ctx context.Context, id string, in refund.QuoteInput, operatorID string) (*models.Booking, *models.RefundRecord, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo            bookingrepo.BookingRepository
	RefundRepo      refundrepo.RefundRecordRepository
	AuditRepo       auditrepo.AuditRepository
	Gateway         payment.Gateway
	NotificationSvc notification.NotificationService
	Logger          *zap.Logger
}

var _ BookingService = (*DefaultBookingService)(nil)
