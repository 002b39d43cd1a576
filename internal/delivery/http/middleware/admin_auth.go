package middleware

import (
	"crypto/subtle"
	"strings"

	"go-visa-diagnosis-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the catalog admin endpoints with a static bearer
// token. An empty configured token disables the admin surface entirely.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Error(apperror.Forbidden("Admin API is not configured"))
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		provided, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.Error(apperror.Unauthorized("Missing bearer token"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			c.Error(apperror.Unauthorized("Invalid admin token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
