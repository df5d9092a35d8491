package mocks

import (
	"context"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RequestOTPFunc func(ctx context.Context, channel domain.OTPChannel, identifier string) (*domain.OTPIssue, error)
	VerifyOTPFunc  func(ctx context.Context, identifier, code string, roleHint domain.Role) (*domain.AuthResult, error)
	RefreshFunc    func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	LogoutFunc     func(ctx context.Context, refreshToken string) error
	GetMeFunc      func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// RequestOTP issues a code
func (m *MockAuthService) RequestOTP(ctx context.Context, channel domain.OTPChannel, identifier string) (*domain.OTPIssue, error) {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, channel, identifier)
	}
	return &domain.OTPIssue{
		Channel:    channel,
		Identifier: identifier,
		ExpiresIn:  5 * time.Minute,
		ExpiresAt:  time.Now().Add(5 * time.Minute),
	}, nil
}

// VerifyOTP logs a user in
func (m *MockAuthService) VerifyOTP(ctx context.Context, identifier, code string, roleHint domain.Role) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, identifier, code, roleHint)
	}
	role := roleHint
	if role == "" {
		role = domain.RoleRider
	}
	return &domain.AuthResult{
		User: &domain.PublicUser{ID: uuid.New(), Role: role},
		TokenPair: domain.TokenPair{
			AccessToken:  "mock_access_token",
			RefreshToken: "mock_refresh_token",
			ExpiresIn:    900,
		},
	}, nil
}

// Refresh rotates a refresh token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &domain.TokenPair{
		AccessToken:  "new_access_token",
		RefreshToken: "new_refresh_token",
		ExpiresIn:    900,
	}, nil
}

// Logout revokes a refresh token
func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

// GetMe loads the caller's profile
func (m *MockAuthService) GetMe(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if m.GetMeFunc != nil {
		return m.GetMeFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
