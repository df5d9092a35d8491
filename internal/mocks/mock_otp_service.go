package mocks

import (
	"context"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	RequestFunc   func(ctx context.Context, channel domain.OTPChannel, identifier string) (*domain.OTPIssue, error)
	VerifyFunc    func(ctx context.Context, identifier, code string) error
	CanResendFunc func(ctx context.Context, identifier string) (bool, time.Duration, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Request issues a code
func (m *MockOTPService) Request(ctx context.Context, channel domain.OTPChannel, identifier string) (*domain.OTPIssue, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, channel, identifier)
	}
	return &domain.OTPIssue{
		Channel:    channel,
		Identifier: identifier,
		ExpiresIn:  5 * time.Minute,
		ExpiresAt:  time.Now().Add(5 * time.Minute),
		DevCode:    "123456",
	}, nil
}

// Verify checks a code
func (m *MockOTPService) Verify(ctx context.Context, identifier, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, identifier, code)
	}
	// Default behavior: accept the fixed dev code
	if code == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}

// CanResend reports the cooldown state
func (m *MockOTPService) CanResend(ctx context.Context, identifier string) (bool, time.Duration, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, identifier)
	}
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
