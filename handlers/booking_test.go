package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spacehub/database/repository/bookingrepo"
	"spacehub/models"
	"spacehub/services/refund"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, filter bookingrepo.Filter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) GetBreakdown(ctx context.Context, id string) (*models.FeeBreakdown, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeeBreakdown), args.Error(1)
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error) {
	args := m.Called(ctx, id, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) QuoteRefund(ctx context.Context, id string, in refund.QuoteInput) (*models.RefundQuote, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefundQuote), args.Error(1)
}

func (m *MockBookingService) ProcessRefund(ctx context.Context, id string, in refund.QuoteInput, operatorID string) (*models.Booking, *models.RefundRecord, error) {
	args := m.Called(ctx, id, in, operatorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Booking), args.Get(1).(*models.RefundRecord), args.Error(2)
}

func newRefundTestRouter(svc *MockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/bookings/:id/refund", h.ProcessRefund)
	r.POST("/bookings/:id/refund/quote", h.QuoteRefund)
	return r
}

func postRefund(t *testing.T, r *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestProcessRefundHandler_AlreadyRefundedIsConflict(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("ProcessRefund", mock.Anything, "bk-1", mock.Anything, mock.Anything).
		Return(nil, nil, &refund.AlreadyRefundedError{BookingID: "bk-1"})

	w := postRefund(t, newRefundTestRouter(svc), "/bookings/bk-1/refund",
		map[string]string{"type": models.RefundTypeFull, "reason": models.RefundReasonGuestRequest})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Contains(t, resp.Message, "already been refunded")
}

func TestProcessRefundHandler_GatewayFailureIsBadGateway(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("ProcessRefund", mock.Anything, "bk-1", mock.Anything, mock.Anything).
		Return(nil, nil, &refund.GatewayError{Op: "refund", Err: assertableErr("card issuer timeout")})

	w := postRefund(t, newRefundTestRouter(svc), "/bookings/bk-1/refund",
		map[string]string{"type": models.RefundTypeFull, "reason": models.RefundReasonGuestRequest})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeError(t, w)
	assert.Contains(t, resp.Message, "card issuer timeout")
}

func TestQuoteRefundHandler_ValidationErrorIsBadRequest(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("QuoteRefund", mock.Anything, "bk-1", mock.Anything).
		Return(nil, &refund.ValidationError{Rule: "amount_exceeds_total", Message: "Refund amount cannot exceed booking total"})

	w := postRefund(t, newRefundTestRouter(svc), "/bookings/bk-1/refund/quote",
		map[string]string{"type": models.RefundTypePartial, "reason": models.RefundReasonOther})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Refund amount cannot exceed booking total", resp.Message)
}

func TestProcessRefundHandler_MalformedBodyIsBadRequest(t *testing.T) {
	svc := &MockBookingService{}

	r := newRefundTestRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/bookings/bk-1/refund", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "invalid input", resp.Message)
	assert.NotEmpty(t, resp.Details)
	svc.AssertNotCalled(t, "ProcessRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
