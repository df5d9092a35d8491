package mocks

import "github.com/Duggineniakhil/Vectra/domain"

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	AddPolicyFunc       func(subject, object, action string) error
	RemovePolicyFunc    func(subject, object, action string) error
	CheckPermissionFunc func(subject, object, action string) (bool, error)
	GetPoliciesFunc     func() ([][]string, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// AddPolicy adds a new authorization policy
func (m *MockPolicyService) AddPolicy(subject, object, action string) error {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(subject, object, action)
	}
	return nil
}

// RemovePolicy removes an authorization policy
func (m *MockPolicyService) RemovePolicy(subject, object, action string) error {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(subject, object, action)
	}
	return nil
}

// CheckPermission checks if a subject may perform action on object
func (m *MockPolicyService) CheckPermission(subject, object, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(subject, object, action)
	}
	// Default behavior: only admins pass
	return subject == "role_ADMIN", nil
}

// GetPolicies returns all policies
func (m *MockPolicyService) GetPolicies() ([][]string, error) {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	return [][]string{}, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
