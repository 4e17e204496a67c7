package middleware

import (
	"strings"

	"sitecms_backend/internal/auth"
	"sitecms_backend/internal/logger"
	"sitecms_backend/pkg/apperrors"
	"sitecms_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the admin token for browser clients.
const SessionCookie = "session"

// Authenticator verifies an admin session token.
type Authenticator interface {
	Authenticate(token string) (*auth.Claims, error)
}

// AuthMiddleware attaches admin claims to the request when a valid token is
// presented in the Authorization header or the session cookie. Requests
// without one pass through anonymously.
func AuthMiddleware(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := authenticator.Authenticate(token)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "session token rejected", "error", err.Error())
			c.Next()
			return
		}

		c.Set(string(contextkeys.AdminContextKey), claims)
		c.Request = c.Request.WithContext(logger.WithAdmin(c.Request.Context(), claims.Username))
		c.Next()
	}
}

// RequireAdmin rejects requests that carry no verified admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetAdmin(c) == nil {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Admin access required"))
			return
		}
		c.Next()
	}
}

func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// GetAdmin returns the admin claims attached by AuthMiddleware, or nil.
func GetAdmin(c *gin.Context) *auth.Claims {
	value, exists := c.Get(string(contextkeys.AdminContextKey))
	if !exists {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
