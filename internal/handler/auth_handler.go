package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/krupasawant/SoleSense/internal/service"
	"github.com/krupasawant/SoleSense/internal/utils"
)

type AuthHandler struct {
	authService *service.AdminAuthService
}

func NewAuthHandler(authService *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", err.Error())
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
	})
}

// Logout handles POST /v1/admin/auth/logout. Runs behind the JWT middleware,
// which leaves the token ID in context.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	if err := h.authService.Logout(c.Request.Context(), tokenID); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to end session")
		return
	}

	utils.Success(c, 200, "Logged out", nil)
}

// Session handles GET /v1/admin/auth/session and returns the signed-in
// admin's identity.
func (h *AuthHandler) Session(c *gin.Context) {
	tokenID := c.GetString("token_id")
	session, err := h.authService.CurrentSession(c.Request.Context(), tokenID)
	if err != nil {
		utils.Error(c, 401, "UNAUTHORIZED", "No active session")
		return
	}

	utils.Success(c, 200, "Session active", session)
}
