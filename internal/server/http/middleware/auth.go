package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the shared back-office secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyRequired rejects requests whose admin key header does not match the
// configured secret. The response is identical for a missing and a wrong key.
func AdminKeyRequired(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminKeyHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin key required"})
			return
		}
		c.Next()
	}
}
