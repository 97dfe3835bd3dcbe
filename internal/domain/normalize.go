package domain

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims whitespace and lower-cases an address.
// Emails are compared and keyed in this form everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail reports whether two addresses are equal ignoring case and surrounding spaces.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}

// ContainsFold reports whether substr is within s, case-insensitively.
// An empty substr matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// isBlank reports whether s is empty after trimming whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validEmail accepts a bare address (no display name).
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == strings.TrimSpace(s)
}
