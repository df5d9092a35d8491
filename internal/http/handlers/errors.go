package handlers

import (
	"errors"
	"net/http"

	"github.com/Duggineniakhil/Vectra/domain"
	logctx "github.com/Duggineniakhil/Vectra/internal/pkg/log"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status and client message.
// Unknown errors become 500 with a generic message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, err.Error()
	// an unknown refresh token is an authentication failure, not a missing resource
	case errors.Is(err, domain.ErrRefreshTokenNotFound):
		return http.StatusUnauthorized, "invalid refresh token"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrExpired),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

func writeError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logctx.From(c.Request.Context()).Error("request failed", "error", err)
	}
	c.JSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
