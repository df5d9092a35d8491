package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// RefreshTokenRepository defines refresh-token record persistence
type RefreshTokenRepository interface {
	Create(ctx context.Context, record *RefreshTokenRecord) error
	// FindByUserID returns every record of the user, active ones first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RefreshTokenRecord, error)
	// Revoke sets revoked_at only if it is still unset and reports whether
	// this call performed the transition
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}

// OTPService issues and verifies one-time codes
type OTPService interface {
	Request(ctx context.Context, channel OTPChannel, identifier string) (*OTPIssue, error)
	Verify(ctx context.Context, identifier, code string) error
	// CanResend reports whether the cooldown has elapsed and, if not, how long remains
	CanResend(ctx context.Context, identifier string) (bool, time.Duration, error)
}

// TokenService defines token signing and parsing
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
	// DecodeUnverified reads the payload segment without checking the signature
	DecodeUnverified(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
}

// TokenIssuer mints a token pair and persists the refresh-token hash
type TokenIssuer interface {
	IssueTokens(ctx context.Context, userID uuid.UUID, role Role) (*TokenPair, error)
}

// SecretHasher hashes short-lived secrets (OTP codes, refresh tokens)
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(hash, secret string) bool
}

// AuthService defines the OTP login and session lifecycle
type AuthService interface {
	RequestOTP(ctx context.Context, channel OTPChannel, identifier string) (*OTPIssue, error)
	VerifyOTP(ctx context.Context, identifier, code string, roleHint Role) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}

// UserService defines administrative user operations
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateStatus(ctx context.Context, actorID, targetID uuid.UUID, status AccountStatus, reason string) (*User, error)
	UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, role Role, reason string) (*User, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() ([][]string, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
