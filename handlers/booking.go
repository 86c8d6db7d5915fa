package handlers

import (
	"net/http"

	"spacehub/database/repository/bookingrepo"
	"spacehub/services/booking"
	"spacehub/services/refund"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking inspection, status transitions, and the
// refund workflow to the admin console.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// refundStatus maps the refund error taxonomy onto HTTP codes. The operator
// always sees the exact failure reason.
func refundStatus(err error) int {
	switch err.(type) {
	case *refund.ValidationError:
		return http.StatusBadRequest
	case *refund.AlreadyRefundedError:
		return http.StatusConflict
	case *refund.InvalidStateError:
		return http.StatusConflict
	case *booking.IllegalTransitionError:
		return http.StatusConflict
	case *refund.GatewayError:
		return http.StatusBadGateway
	case *refund.PersistenceError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ListBookings returns bookings filtered by query parameters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := bookingrepo.Filter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		SeekerID:      c.Query("seeker_id"),
		PartnerID:     c.Query("partner_id"),
	}
	bookings, err := h.Service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBreakdown returns the booking's recomputed fee breakdown.
func (h *BookingHandler) GetBreakdown(c *gin.Context) {
	breakdown, err := h.Service.GetBreakdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// UpdateStatus applies a booking status transition.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		utils.JSONError(c, refundStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// QuoteRefund computes a refund quote without side effects.
func (h *BookingHandler) QuoteRefund(c *gin.Context) {
	var input refund.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quote, err := h.Service.QuoteRefund(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, refundStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ProcessRefund executes the refund workflow for a booking.
func (h *BookingHandler) ProcessRefund(c *gin.Context) {
	var input refund.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	operatorID := c.GetString("adminID")
	updated, record, err := h.Service.ProcessRefund(c.Request.Context(), c.Param("id"), input, operatorID)
	if err != nil {
		status := refundStatus(err)
		if status >= http.StatusInternalServerError {
			h.Logger.Error("Refund failed", zap.String("bookingId", c.Param("id")), zap.Error(err))
		}
		utils.JSONError(c, status, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": updated,
		"refund":  record,
	})
}
