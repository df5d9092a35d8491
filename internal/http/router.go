package httpx

import (
	"log/slog"
	"net/http"

	"github.com/Duggineniakhil/Vectra/internal/http/handlers"
	"github.com/Duggineniakhil/Vectra/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything BuildRouter mounts
type Handlers struct {
	Auth     *handlers.AuthHandlers
	Admin    *handlers.AdminHandlers
	Policies *handlers.PolicyHandlers
}

func BuildRouter(logger *slog.Logger, h Handlers, jwtmw *middleware.AuthMW, cb middleware.CasbinMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/request-otp", h.Auth.RequestOTP)
	auth.POST("/verify-otp", h.Auth.VerifyOTP)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", jwtmw.WithJWT(), cb.Enforce(), h.Auth.Me)

	adm := api.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/users/:id", h.Admin.GetUser)
	adm.PATCH("/users/:id/status", h.Admin.UpdateStatus)
	adm.PATCH("/users/:id/role", h.Admin.UpdateRole)
	adm.GET("/policies", h.Policies.List)
	adm.POST("/policies", h.Policies.Add)
	adm.DELETE("/policies", h.Policies.Remove)

	return r
}
