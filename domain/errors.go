package domain

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap one of these, so callers can
// match either the category or the exact cause with errors.Is.
var (
	ErrRateLimited        = errors.New("too many requests")
	ErrExpired            = errors.New("expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("refresh token revoked")
	ErrNotFound           = errors.New("not found")
)

// OTP errors
var (
	ErrOTPCooldown       = fmt.Errorf("%w: please wait before requesting otp again", ErrRateLimited)
	ErrOTPMaxAttempts    = fmt.Errorf("%w: too many attempts, request otp again", ErrRateLimited)
	ErrOTPExpired        = fmt.Errorf("%w: otp expired or not requested", ErrExpired)
	ErrOTPInvalid        = fmt.Errorf("%w: invalid otp", ErrInvalidCredentials)
	ErrInvalidIdentifier = errors.New("identifier must not be empty")
)

// Token errors
var (
	ErrTokenExpired         = fmt.Errorf("%w: refresh token expired", ErrExpired)
	ErrTokenMalformed       = fmt.Errorf("%w: malformed token", ErrTokenInvalid)
	ErrRefreshTokenNotFound = fmt.Errorf("%w: refresh token", ErrNotFound)
)

// User errors
var (
	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrAccountInactive   = errors.New("account is not active")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid account status")
)

// Authorization errors
var (
	ErrInvalidPolicy = errors.New("policy requires subject, object and action")
)
