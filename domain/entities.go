package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse permission class of a user
type Role string

const (
	RoleRider  Role = "RIDER"
	RoleDriver Role = "DRIVER"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleRider, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a user account
type AccountStatus string

const (
	StatusActive    AccountStatus = "ACTIVE"
	StatusSuspended AccountStatus = "SUSPENDED"
	StatusDeleted   AccountStatus = "DELETED"
)

// Valid reports whether s is one of the known statuses
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

// OTPChannel tells how the identifier is reached. It is informational only.
type OTPChannel string

const (
	ChannelPhone OTPChannel = "phone"
	ChannelEmail OTPChannel = "email"
)

// RefreshTokenType is the typ claim carried by refresh tokens
const RefreshTokenType = "refresh"

// User represents a rider, driver or administrator
type User struct {
	ID          uuid.UUID
	Role        Role
	Email       *string
	Phone       *string
	Name        *string
	Status      AccountStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// PublicUser is the projection returned after login
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Role  Role      `json:"role"`
	Email *string   `json:"email"`
	Phone *string   `json:"phone"`
	Name  *string   `json:"name"`
}

// UserProfile is the projection returned by the "me" endpoint
type UserProfile struct {
	ID        uuid.UUID     `json:"id"`
	Role      Role          `json:"role"`
	Email     *string       `json:"email"`
	Phone     *string       `json:"phone"`
	Name      *string       `json:"name"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Public returns the login projection of u
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Role:  u.Role,
		Email: u.Email,
		Phone: u.Phone,
		Name:  u.Name,
	}
}

// Profile returns the profile projection of u
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Role:      u.Role,
		Email:     u.Email,
		Phone:     u.Phone,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshTokenRecord is the persisted trace of one issued refresh token.
// Only the hash of the raw token is ever stored.
type RefreshTokenRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsRevoked reports whether the record has been revoked
func (r *RefreshTokenRecord) IsRevoked() bool {
	return r.RevokedAt != nil
}

// IsExpired reports whether the record is past its expiry at now
func (r *RefreshTokenRecord) IsExpired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}

// OTPIssue describes an issued one-time code
type OTPIssue struct {
	Channel    OTPChannel
	Identifier string
	ExpiresIn  time.Duration
	ExpiresAt  time.Time
	// DevCode holds the raw code outside production, empty otherwise
	DevCode string
}

// TokenPair is a freshly minted access/refresh pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User *PublicUser
	TokenPair
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uuid.UUID
	Role      Role
	Type      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
