package mocks

import (
	"context"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
)

// MockTokenIssuer implements domain.TokenIssuer interface for testing
type MockTokenIssuer struct {
	IssueTokensFunc func(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.TokenPair, error)
}

func NewMockTokenIssuer() *MockTokenIssuer {
	return &MockTokenIssuer{}
}

// IssueTokens mints a token pair
func (m *MockTokenIssuer) IssueTokens(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.TokenPair, error) {
	if m.IssueTokensFunc != nil {
		return m.IssueTokensFunc(ctx, userID, role)
	}
	return &domain.TokenPair{
		AccessToken:  "access_" + userID.String(),
		RefreshToken: "refresh_" + userID.String(),
		ExpiresIn:    900,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenIssuer = (*MockTokenIssuer)(nil)
