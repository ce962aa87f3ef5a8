package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

const bearerPrefix = "Bearer "

// Auth returns Gin middleware that resolves the bearer token into a caller
// identity. Handlers downstream read the user id from the context; the
// ledger itself never sees the credential.
func Auth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		subject, err := utils.ParseToken(jwtSecret, strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(pkg.UserId, subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(pkg.ErrUnauthorizedCode.Status, pkg.ErrorResponse{
		Code:    pkg.ErrUnauthorizedCode.Code,
		Message: message,
	})
}
