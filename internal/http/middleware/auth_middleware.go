package middleware

import (
	"net/http"
	"strings"

	"github.com/Duggineniakhil/Vectra/domain"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates authentication middleware. Only access tokens are
// accepted; refresh tokens fail validation.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") || tokenParts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)

		l := logctx.From(c.Request.Context()).With("user_id", claims.UserID)
		c.Request = c.Request.WithContext(logctx.Into(c.Request.Context(), l))

		c.Next()
	})
}
