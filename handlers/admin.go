// File: spacehub/handlers/admin.go
package handlers

import (
	"net/http"

	"spacehub/services/admin"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates operator account operations.
type AdminHandler struct {
	AdminService admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: as}
}

// LoginHandler authenticates an operator and returns a session token.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, token, err := ah.AdminService.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err == admin.ErrInvalidCredentials {
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
		return
	}
	if err != nil {
		zap.L().Error("Admin login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to authenticate", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    rec.ID,
			"email": rec.Email,
			"name":  rec.Name,
			"role":  rec.Role,
		},
	})
}
