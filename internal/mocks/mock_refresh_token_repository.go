package mocks

import (
	"context"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository interface for testing
type MockRefreshTokenRepository struct {
	CreateFunc           func(ctx context.Context, record *domain.RefreshTokenRecord) error
	FindByUserIDFunc     func(ctx context.Context, userID uuid.UUID) ([]*domain.RefreshTokenRecord, error)
	RevokeFunc           func(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}

// NewMockRefreshTokenRepository creates a new MockRefreshTokenRepository with default behaviors
func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{}
}

// Create stores a refresh token record
func (m *MockRefreshTokenRepository) Create(ctx context.Context, record *domain.RefreshTokenRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return nil
}

// FindByUserID lists a user's refresh token records
func (m *MockRefreshTokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.RefreshTokenRecord, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// Revoke marks one record revoked
func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, id, at)
	}
	return true, nil
}

// RevokeAllForUser marks all of a user's active records revoked
func (m *MockRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	if m.RevokeAllForUserFunc != nil {
		return m.RevokeAllForUserFunc(ctx, userID, at)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)
