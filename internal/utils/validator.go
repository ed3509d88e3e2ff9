package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	otpRegex   = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateEmail validates an email address against a local@domain.tld shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateOTP checks that a code is exactly 6 digits
func ValidateOTP(code string) bool {
	return otpRegex.MatchString(code)
}

// SanitizeEmail normalizes an email address: trim whitespace, lowercase
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
