package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminGate creates a Gin middleware guarding admin-only routes. The
// presented bearer token must match the process-wide admin secret
// byte-for-byte; anything else is rejected before the handler runs.
// There is no session, no expiry and no per-admin identity.
func AdminGate(adminSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Authorization header format must be Bearer {token}"})
			return
		}

		token := parts[1]
		if subtle.ConstantTimeCompare([]byte(token), []byte(adminSecret)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid admin token"})
			return
		}

		c.Next()
	}
}
