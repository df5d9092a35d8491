package mocks

import (
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role domain.Role) (string, error)
	GenerateRefreshTokenFunc func(userID uuid.UUID, role domain.Role) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
	DecodeUnverifiedFunc     func(token string) (*domain.TokenClaims, error)
	AccessTTLValue           time.Duration
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{AccessTTLValue: 15 * time.Minute}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(userID uuid.UUID, role domain.Role) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, role)
	}
	return "access_" + userID.String(), nil
}

// GenerateRefreshToken generates a refresh token
func (m *MockTokenService) GenerateRefreshToken(userID uuid.UUID, role domain.Role) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID, role)
	}
	return "refresh_" + userID.String(), nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenMalformed
}

// ValidateRefreshToken validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenMalformed
}

// DecodeUnverified decodes a token without verifying it
func (m *MockTokenService) DecodeUnverified(token string) (*domain.TokenClaims, error) {
	if m.DecodeUnverifiedFunc != nil {
		return m.DecodeUnverifiedFunc(token)
	}
	return nil, domain.ErrTokenMalformed
}

// AccessTTL returns the configured access token lifetime
func (m *MockTokenService) AccessTTL() time.Duration {
	return m.AccessTTLValue
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
