package middleware

import (
	"net/http"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/auth"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
	"github.com/gin-gonic/gin"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// CasbinMW checks (role subject, route, method) against the policy store.
// It must run after AuthMiddleware.
type CasbinMW struct {
	policies domain.PolicyService
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(policies domain.PolicyService) *CasbinMW {
	return &CasbinMW{policies: policies}
}

// Enforce returns the casbin authorization middleware
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		role, ok := UserRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found in token"})
			c.Abort()
			return
		}

		// Match against the route pattern (/api/v1/admin/users/:id) when there is one
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		allowed, err := mw.policies.CheckPermission(auth.RoleSubject(string(role)), path, method)
		if err != nil {
			logctx.From(c.Request.Context()).Error("authorization check failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}
