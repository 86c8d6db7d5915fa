package handlers

import (
	"net/http"

	"spacehub/services/listing"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes listing moderation to the admin console.
type ListingHandler struct {
	Service listing.ListingService
	Logger  *zap.Logger
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(svc listing.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{Service: svc, Logger: logger}
}

// ListListings returns listings, optionally filtered by moderation status.
func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.Service.ListListings(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.Logger.Error("Failed to list listings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch listings", "")
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetListing returns one listing by id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	l, err := h.Service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "listing not found", "")
		return
	}
	c.JSON(http.StatusOK, l)
}

// ModerateListing applies a moderation decision.
func (h *ListingHandler) ModerateListing(c *gin.Context) {
	var input struct {
		Decision string `json:"decision" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	adminID := c.GetString("adminID")
	updated, err := h.Service.Moderate(c.Request.Context(), c.Param("id"), input.Decision, input.Notes, adminID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, updated)
}
