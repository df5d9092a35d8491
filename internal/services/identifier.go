package services

import (
	"strings"

	"github.com/Duggineniakhil/Vectra/domain"
)

// NormalizeIdentifier trims whitespace and lowercases email addresses so the
// same person always maps to the same OTP keys and user row.
func NormalizeIdentifier(identifier string) string {
	id := strings.TrimSpace(identifier)
	if isEmail(id) {
		id = strings.ToLower(id)
	}
	return id
}

func isEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}

// ChannelFor infers the delivery channel from the identifier shape
func ChannelFor(identifier string) domain.OTPChannel {
	if isEmail(identifier) {
		return domain.ChannelEmail
	}
	return domain.ChannelPhone
}
