package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/Duggineniakhil/Vectra/domain"
	"golang.org/x/crypto/bcrypt"
)

// HashServiceImpl implements domain.SecretHasher with salted bcrypt hashes.
// Secrets are first reduced to a SHA-256 digest so that inputs longer than
// bcrypt's 72-byte limit (refresh tokens) still hash every byte.
type HashServiceImpl struct {
	cost int
}

// NewHashService creates a new hash service. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewHashService(cost int) domain.SecretHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &HashServiceImpl{cost: cost}
}

func digest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(sum)))
	base64.RawURLEncoding.Encode(out, sum[:])
	return out
}

// Hash implements domain.SecretHasher
func (h *HashServiceImpl) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(digest(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify implements domain.SecretHasher. bcrypt compares in constant time.
func (h *HashServiceImpl) Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(secret)) == nil
}
