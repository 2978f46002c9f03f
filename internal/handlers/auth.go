// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /v1/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), &req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		return
	}
	if err != nil {
		respondError(c, err, "admin")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"admin":      authResponse.Admin,
		"token":      authResponse.AccessToken,
		"token_type": authResponse.TokenType,
		"expires_in": authResponse.ExpiresIn,
	})
}

// GET /v1/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, _ := utils.GetAdminIDFromContext(c)
	admin, err := h.authService.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}
	utils.SuccessResponse(c, admin)
}
