package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krupasawant/SoleSense/internal/service"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// JWTMiddleware authenticates admin requests. A token must be validly signed
// and have a live session record, so logout revokes access before the token
// expires.
type JWTMiddleware struct {
	auth *service.AdminAuthService
}

func NewJWTMiddleware(auth *service.AdminAuthService) *JWTMiddleware {
	return &JWTMiddleware{auth: auth}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		if _, err := m.auth.CurrentSession(c.Request.Context(), claims.ID); err != nil {
			utils.Error(c, 401, "SESSION_REVOKED", "Session is no longer active")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("token_id", claims.ID)
		c.Next()
	}
}
