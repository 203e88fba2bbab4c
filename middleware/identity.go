package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity is resolved upstream: the auth gateway in front of this service
// verifies the session and forwards the caller's id and role as headers.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// IdentityMiddleware requires the forwarded user id and stores it, with the
// role, in the request context.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, c.GetHeader(HeaderUserRole))
		c.Next()
	}
}

// RequireAdmin gates admin-only endpoints on the forwarded role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}
