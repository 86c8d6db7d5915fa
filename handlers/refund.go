package handlers

import (
	"net/http"
	"strconv"

	"spacehub/database/repository/auditrepo"
	"spacehub/database/repository/refundrepo"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RefundHandler exposes the refund and audit trails for support review.
type RefundHandler struct {
	RefundRepo refundrepo.RefundRecordRepository
	AuditRepo  auditrepo.AuditRepository
	Logger     *zap.Logger
}

// NewRefundHandler creates a new RefundHandler.
func NewRefundHandler(rr refundrepo.RefundRecordRepository, ar auditrepo.AuditRepository, logger *zap.Logger) *RefundHandler {
	return &RefundHandler{RefundRepo: rr, AuditRepo: ar, Logger: logger}
}

// ListRefunds returns every refund record, newest first.
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	records, err := h.RefundRepo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list refund records", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch refunds", "")
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListBookingRefunds returns the refund records for one booking.
func (h *RefundHandler) ListBookingRefunds(c *gin.Context) {
	records, err := h.RefundRepo.GetByBookingID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("Failed to list booking refunds", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch refunds", "")
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListAuditEvents returns recent audit events, optionally filtered by severity.
func (h *RefundHandler) ListAuditEvents(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	events, err := h.AuditRepo.List(c.Request.Context(), c.Query("severity"), limit)
	if err != nil {
		h.Logger.Error("Failed to list audit events", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch audit events", "")
		return
	}
	c.JSON(http.StatusOK, events)
}
