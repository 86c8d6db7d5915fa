package handlers

import (
	"net/http"

	"spacehub/models"
	"spacehub/services/admin"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
)

// LegalHandler serves the platform's legal documents.
type LegalHandler struct {
	AdminService admin.AdminService
}

// NewLegalHandler creates a new LegalHandler.
func NewLegalHandler(as admin.AdminService) *LegalHandler {
	return &LegalHandler{AdminService: as}
}

// GetLegalSections returns all legal documents.
func (h *LegalHandler) GetLegalSections(c *gin.Context) {
	c.JSON(http.StatusOK, h.AdminService.GetLegalSections())
}

// GetLegalSectionsFor returns legal documents for a role ("seeker" or "partner").
func (h *LegalHandler) GetLegalSectionsFor(c *gin.Context) {
	role := c.Param("role")
	switch role {
	case "seeker":
		role = models.RoleSeeker
	case "partner":
		role = models.RolePartner
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown role", "")
		return
	}
	c.JSON(http.StatusOK, h.AdminService.GetLegalSectionsFor(role))
}
