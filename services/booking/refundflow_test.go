package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"spacehub/database/repository/bookingrepo"
	"spacehub/models"
	"spacehub/services/refund"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fullRefundInput() refund.QuoteInput {
	return refund.QuoteInput{
		Type:   models.RefundTypeFull,
		Reason: models.RefundReasonGuestRequest,
	}
}

func TestProcessRefund_FullRefundSuccess(t *testing.T) {
	repo := &MockBookingRepository{}
	refunds := &MockRefundRepository{}
	gateway := &MockGateway{}
	notifier := &MockNotificationService{}
	svc := newTestService(repo, refunds, &MockAuditRepository{}, gateway, notifier)

	paid := storedBooking(models.BookingStatusCancelled, models.PaymentStatusPaid)
	refunded := storedBooking(models.BookingStatusCancelled, models.PaymentStatusRefunded)

	repo.On("GetByID", mock.Anything, "bk-1").Return(paid, nil)
	gateway.On("Refund", mock.Anything, "pi_123", int64(12000), mock.Anything).Return("re_1", nil)
	repo.On("MarkRefunded", mock.Anything, "bk-1").Return(refunded, nil)
	refunds.On("Create", mock.Anything, mock.MatchedBy(func(r models.RefundRecord) bool {
		return r.BookingID == "bk-1" &&
			r.Type == models.RefundTypeFull &&
			r.SeekerRefundAmount == 120.00 &&
			r.TotalRefunded == 120.00 &&
			r.ExternalRefundID == "re_1" &&
			r.ProcessedBy == "admin-1"
	})).Return("rr_1", nil)
	notifier.On("Enqueue", mock.Anything, models.NotificationRefundIssued, "seeker-1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	updated, record, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)
	assert.Equal(t, "rr_1", record.ID)
	assert.Equal(t, "re_1", record.ExternalRefundID)
	gateway.AssertNotCalled(t, "ReverseTransfer", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	refunds.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestProcessRefund_SplitRefundReversesTransferAndNotifiesPartner(t *testing.T) {
	repo := &MockBookingRepository{}
	refunds := &MockRefundRepository{}
	gateway := &MockGateway{}
	notifier := &MockNotificationService{}
	svc := newTestService(repo, refunds, &MockAuditRepository{}, gateway, notifier)

	paid := storedBooking(models.BookingStatusCancelled, models.PaymentStatusPaid)
	refunded := storedBooking(models.BookingStatusCancelled, models.PaymentStatusRefunded)

	repo.On("GetByID", mock.Anything, "bk-1").Return(paid, nil)
	// split on the 120.00 booking: platform keeps 40, each side gets 40.
	gateway.On("Refund", mock.Anything, "pi_123", int64(4000), mock.Anything).Return("re_1", nil)
	gateway.On("ReverseTransfer", mock.Anything, "tr_123", int64(4000)).Return("trr_1", nil)
	repo.On("MarkRefunded", mock.Anything, "bk-1").Return(refunded, nil)
	refunds.On("Create", mock.Anything, mock.MatchedBy(func(r models.RefundRecord) bool {
		return r.SeekerRefundAmount == 40.00 &&
			r.PartnerRefundAmount == 40.00 &&
			r.TotalRefunded == 80.00 &&
			r.ExternalTransferReversalID == "trr_1"
	})).Return("rr_1", nil)
	notifier.On("Enqueue", mock.Anything, models.NotificationRefundIssued, "seeker-1", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.On("Enqueue", mock.Anything, models.NotificationPayoutReversed, "partner-1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, record, err := svc.ProcessRefund(context.Background(), "bk-1", refund.QuoteInput{
		Type:   models.RefundTypeSplit5050,
		Reason: models.RefundReasonHostCancellation,
	}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 80.00, record.TotalRefunded)
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestProcessRefund_AlreadyRefunded(t *testing.T) {
	repo := &MockBookingRepository{}
	gateway := &MockGateway{}
	svc := newTestService(repo, &MockRefundRepository{}, &MockAuditRepository{}, gateway, &MockNotificationService{})

	repo.On("GetByID", mock.Anything, "bk-1").Return(storedBooking(models.BookingStatusCancelled, models.PaymentStatusRefunded), nil)

	_, _, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")

	var arErr *refund.AlreadyRefundedError
	require.ErrorAs(t, err, &arErr)
	gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessRefund_UnpaidBooking(t *testing.T) {
	repo := &MockBookingRepository{}
	gateway := &MockGateway{}
	svc := newTestService(repo, &MockRefundRepository{}, &MockAuditRepository{}, gateway, &MockNotificationService{})

	repo.On("GetByID", mock.Anything, "bk-1").Return(storedBooking(models.BookingStatusPending, models.PaymentStatusPending), nil)

	_, _, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")

	var isErr *refund.InvalidStateError
	require.ErrorAs(t, err, &isErr)
	assert.Equal(t, models.PaymentStatusPending, isErr.PaymentStatus)
	gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessRefund_GatewayFailureLeavesNoState(t *testing.T) {
	repo := &MockBookingRepository{}
	refunds := &MockRefundRepository{}
	gateway := &MockGateway{}
	svc := newTestService(repo, refunds, &MockAuditRepository{}, gateway, &MockNotificationService{})

	repo.On("GetByID", mock.Anything, "bk-1").Return(storedBooking(models.BookingStatusCancelled, models.PaymentStatusPaid), nil)
	gateway.On("Refund", mock.Anything, "pi_123", int64(12000), mock.Anything).
		Return("", errors.New("card issuer timeout"))

	_, _, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")

	var gwErr *refund.GatewayError
	require.ErrorAs(t, err, &gwErr)
	// The gateway message surfaces verbatim to the operator.
	assert.Contains(t, err.Error(), "card issuer timeout")
	repo.AssertNotCalled(t, "MarkRefunded", mock.Anything, mock.Anything)
	refunds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcessRefund_PersistFailureAfterGatewayIsAudited(t *testing.T) {
	repo := &MockBookingRepository{}
	refunds := &MockRefundRepository{}
	audit := &MockAuditRepository{}
	gateway := &MockGateway{}
	svc := newTestService(repo, refunds, audit, gateway, &MockNotificationService{})

	repo.On("GetByID", mock.Anything, "bk-1").Return(storedBooking(models.BookingStatusCancelled, models.PaymentStatusPaid), nil)
	gateway.On("Refund", mock.Anything, "pi_123", int64(12000), mock.Anything).Return("re_1", nil)
	repo.On("MarkRefunded", mock.Anything, "bk-1").Return(nil, errors.New("primary stepped down"))
	audit.On("Record", mock.Anything, mock.MatchedBy(func(e models.AuditEvent) bool {
		return e.Severity == models.AuditSeverityError && e.Details["external_refund_id"] == "re_1"
	})).Return("ae_1", nil)

	_, _, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")

	var pErr *refund.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "re_1", pErr.ExternalRefundID)
	assert.Contains(t, err.Error(), "manual reconciliation")
	audit.AssertExpectations(t)
	refunds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcessRefund_RecordInsertFailureAfterGatewayIsAudited(t *testing.T) {
	repo := &MockBookingRepository{}
	refunds := &MockRefundRepository{}
	audit := &MockAuditRepository{}
	gateway := &MockGateway{}
	svc := newTestService(repo, refunds, audit, gateway, &MockNotificationService{})

	refunded := storedBooking(models.BookingStatusCancelled, models.PaymentStatusRefunded)
	repo.On("GetByID", mock.Anything, "bk-1").Return(storedBooking(models.BookingStatusCancelled, models.PaymentStatusPaid), nil)
	gateway.On("Refund", mock.Anything, "pi_123", int64(12000), mock.Anything).Return("re_1", nil)
	repo.On("MarkRefunded", mock.Anything, "bk-1").Return(refunded, nil)
	refunds.On("Create", mock.Anything, mock.Anything).Return("", errors.New("write concern error"))
	audit.On("Record", mock.Anything, mock.Anything).Return("ae_1", nil)

	_, _, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")

	var pErr *refund.PersistenceError
	require.ErrorAs(t, err, &pErr)
	audit.AssertExpectations(t)
}

// raceBookingRepo is a stateful in-memory repo whose MarkRefunded performs
// the same guarded compare-and-set the Mongo implementation does, so two
// concurrent refunds genuinely race.
type raceBookingRepo struct {
	mu      sync.Mutex
	booking models.Booking
}

func (r *raceBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.booking
	return &b, nil
}

func (r *raceBookingRepo) List(ctx context.Context, filter bookingrepo.Filter) ([]models.Booking, error) {
	return nil, nil
}

func (r *raceBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	return booking.ID, nil
}

func (r *raceBookingRepo) UpdateStatus(ctx context.Context, id, status string, refundRequired bool) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booking.Status = status
	b := r.booking
	return &b, nil
}

func (r *raceBookingRepo) MarkRefunded(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.booking.PaymentStatus != models.PaymentStatusPaid {
		return nil, bookingrepo.ErrStateConflict
	}
	r.booking.PaymentStatus = models.PaymentStatusRefunded
	b := r.booking
	return &b, nil
}

func TestProcessRefund_ConcurrentAttemptsCreateExactlyOneRecord(t *testing.T) {
	repo := &raceBookingRepo{booking: *storedBooking(models.BookingStatusCancelled, models.PaymentStatusPaid)}
	refunds := &MockRefundRepository{}
	audit := &MockAuditRepository{}
	gateway := &MockGateway{}
	notifier := &MockNotificationService{}

	gateway.On("Refund", mock.Anything, "pi_123", int64(12000), mock.Anything).Return("re_1", nil)
	refunds.On("Create", mock.Anything, mock.Anything).Return("rr_1", nil)
	audit.On("Record", mock.Anything, mock.Anything).Return("ae_1", nil)
	notifier.On("Enqueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := &DefaultBookingService{
		Repo:            repo,
		RefundRepo:      refunds,
		AuditRepo:       audit,
		Gateway:         gateway,
		NotificationSvc: notifier,
		Logger:          zap.NewNop(),
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := svc.ProcessRefund(context.Background(), "bk-1", fullRefundInput(), "admin-1")
			results[i] = err
		}(i)
	}
	wg.Wait()

	var successes, alreadyRefunded int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var arErr *refund.AlreadyRefundedError
		if errors.As(err, &arErr) {
			alreadyRefunded++
		}
	}

	assert.Equal(t, 1, successes, "exactly one refund must win")
	assert.Equal(t, 1, alreadyRefunded, "the loser must see AlreadyRefundedError")
	refunds.AssertNumberOfCalls(t, "Create", 1)
}
