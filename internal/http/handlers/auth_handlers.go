package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandlers handles the public OTP login and token endpoints
type AuthHandlers struct {
	authSvc domain.AuthService
	otpSvc  domain.OTPService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		otpSvc:  otpSvc,
	}
}

// RequestOTPRequest represents an OTP request
type RequestOTPRequest struct {
	Channel    string `json:"channel" binding:"required,oneof=phone email"`
	Identifier string `json:"identifier" binding:"required"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Code       string `json:"code" binding:"required,len=6"`
	RoleHint   string `json:"roleHint" binding:"omitempty,oneof=RIDER DRIVER"`
}

// RefreshRequest carries a raw refresh token; used by refresh and logout
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RequestOTP issues a one-time code for the identifier
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	issue, err := h.authSvc.RequestOTP(ctx, domain.OTPChannel(req.Channel), req.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrOTPCooldown) {
			if _, remaining, cerr := h.otpSvc.CanResend(ctx, req.Identifier); cerr == nil && remaining > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(remaining.Seconds()))))
			}
		}
		writeError(c, err)
		return
	}

	data := gin.H{
		"success":          true,
		"channel":          issue.Channel,
		"identifier":       issue.Identifier,
		"expiresInSeconds": int64(issue.ExpiresIn.Seconds()),
	}
	if issue.DevCode != "" {
		data["devOtp"] = issue.DevCode
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// VerifyOTP exchanges a valid code for a token pair, registering the user on first login
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Identifier, req.Code, domain.Role(req.RoleHint))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user":         result.User,
			"accessToken":  result.AccessToken,
			"refreshToken": result.RefreshToken,
			"expiresIn":    result.ExpiresIn,
		},
	})
}

// Refresh rotates a refresh token
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
			"expiresIn":    pair.ExpiresIn,
		},
	})
}

// Logout revokes a refresh token. It succeeds for unknown or malformed tokens.
func (h *AuthHandlers) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"success": true}})
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	profile, err := h.authSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}
