package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminOnly gates the admin console: the authenticated email must match
// the designated administrator address exactly.
func AdminOnly(adminEmail string) gin.HandlerFunc {
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
	return func(c *gin.Context) {
		email, ok := c.Get("email")
		if !ok || strings.ToLower(email.(string)) != adminEmail {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
