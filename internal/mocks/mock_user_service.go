package mocks

import (
	"context"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/google/uuid"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	GetUserFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateStatusFunc func(ctx context.Context, actorID, targetID uuid.UUID, status domain.AccountStatus, reason string) (*domain.User, error)
	UpdateRoleFunc   func(ctx context.Context, actorID, targetID uuid.UUID, role domain.Role, reason string) (*domain.User, error)
}

func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// GetUser loads a user
func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateStatus changes a user's status
func (m *MockUserService) UpdateStatus(ctx context.Context, actorID, targetID uuid.UUID, status domain.AccountStatus, reason string) (*domain.User, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, actorID, targetID, status, reason)
	}
	return &domain.User{ID: targetID, Role: domain.RoleRider, Status: status}, nil
}

// UpdateRole changes a user's role
func (m *MockUserService) UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, role domain.Role, reason string) (*domain.User, error) {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, actorID, targetID, role, reason)
	}
	return &domain.User{ID: targetID, Role: role, Status: domain.StatusActive}, nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
