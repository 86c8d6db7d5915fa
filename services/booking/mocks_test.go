package booking

import (
	"context"

	"spacehub/database/repository/bookingrepo"
	"spacehub/models"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, filter bookingrepo.Filter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id, status string, refundRequired bool) (*models.Booking, error) {
	args := m.Called(ctx, id, status, refundRequired)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkRefunded(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockRefundRepository struct {
	mock.Mock
}

func (m *MockRefundRepository) Create(ctx context.Context, record models.RefundRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockRefundRepository) GetByBookingID(ctx context.Context, bookingID string) ([]models.RefundRecord, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]models.RefundRecord), args.Error(1)
}

func (m *MockRefundRepository) List(ctx context.Context) ([]models.RefundRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RefundRecord), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, event models.AuditEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, severity string, limit int64) ([]models.AuditEvent, error) {
	args := m.Called(ctx, severity, limit)
	return args.Get(0).([]models.AuditEvent), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Refund(ctx context.Context, chargeID string, amountCents int64, metadata map[string]string) (string, error) {
	args := m.Called(ctx, chargeID, amountCents, metadata)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) ReverseTransfer(ctx context.Context, transferID string, amountCents int64) (string, error) {
	args := m.Called(ctx, transferID, amountCents)
	return args.String(0), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Enqueue(ctx context.Context, notificationType, targetUserID, title, body string, data map[string]string) error {
	args := m.Called(ctx, notificationType, targetUserID, title, body, data)
	return args.Error(0)
}
