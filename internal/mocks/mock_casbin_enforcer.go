package mocks

import "github.com/Duggineniakhil/Vectra/domain"

// MockCasbinEnforcer implements the CasbinEnforcer interface for testing.
// Its default Enforce matches stored rules exactly, without casbin's
// pattern functions.
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error

	SaveCalls int
	policies  [][]string
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{
		policies: [][]string{
			{"role_ADMIN", "/api/v1/admin/users/:id", "GET"},
			{"role_RIDER", "/api/v1/auth/me", "GET"},
		},
	}
}

func toRule(params []interface{}) []string {
	rule := make([]string, len(params))
	for i, p := range params {
		if s, ok := p.(string); ok {
			rule[i] = s
		}
	}
	return rule
}

func (m *MockCasbinEnforcer) indexOf(rule []string) int {
	for i, policy := range m.policies {
		if len(policy) != len(rule) {
			continue
		}
		match := true
		for j := range policy {
			if policy[j] != rule[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// AddPolicy adds a rule; it reports false when the rule already exists
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	rule := toRule(params)
	if m.indexOf(rule) >= 0 {
		return false, nil
	}
	m.policies = append(m.policies, rule)
	return true, nil
}

// RemovePolicy removes a rule; it reports false when the rule is absent
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	i := m.indexOf(toRule(params))
	if i < 0 {
		return false, nil
	}
	m.policies = append(m.policies[:i], m.policies[i+1:]...)
	return true, nil
}

// Enforce allows a request only if an identical rule is stored
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	return m.indexOf(toRule(rvals)) >= 0, nil
}

// GetPolicy returns a copy of all rules
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	result := make([][]string, len(m.policies))
	for i, policy := range m.policies {
		result[i] = append([]string(nil), policy...)
	}
	return result, nil
}

// SavePolicy persists all rules
func (m *MockCasbinEnforcer) SavePolicy() error {
	m.SaveCalls++
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	return nil
}

// SetPolicies replaces the stored rules (test helper)
func (m *MockCasbinEnforcer) SetPolicies(policies [][]string) {
	m.policies = make([][]string, len(policies))
	for i, policy := range policies {
		m.policies[i] = append([]string(nil), policy...)
	}
}
