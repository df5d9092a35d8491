package mocks

import "github.com/Duggineniakhil/Vectra/domain"

// MockSecretHasher implements domain.SecretHasher interface for testing
type MockSecretHasher struct {
	HashFunc   func(secret string) (string, error)
	VerifyFunc func(hash, secret string) bool
}

// NewMockSecretHasher creates a new MockSecretHasher with default behaviors
func NewMockSecretHasher() *MockSecretHasher {
	return &MockSecretHasher{}
}

// Hash hashes a secret
func (m *MockSecretHasher) Hash(secret string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(secret)
	}
	// Default behavior: reversible prefix (for testing only)
	return "hashed_" + secret, nil
}

// Verify checks a secret against its hash
func (m *MockSecretHasher) Verify(hash, secret string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, secret)
	}
	return hash == "hashed_"+secret
}

// Compile-time interface compliance verification
var _ domain.SecretHasher = (*MockSecretHasher)(nil)
