// Package redact masks identifiers and secrets before they reach the logs.
package redact

import "strings"

// Email keeps the first two characters of the local part and the domain
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := parts[0], parts[1]
	if r := []rune(local); len(r) > 2 {
		local = string(r[:2]) + "***"
	} else {
		local = "***"
	}
	return local + "@" + domain
}

// Phone keeps only the last two digits
func Phone(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return "***"
	}
	return "***" + string(r[len(r)-2:])
}

// Identifier dispatches to Email or Phone
func Identifier(s string) string {
	if strings.Contains(s, "@") {
		return Email(s)
	}
	return Phone(s)
}

func Token() string { return "[REDACTED_TOKEN]" }
func OTP() string   { return "[REDACTED_OTP]" }
