package validator

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize trims leading/trailing whitespace and collapses internal runs of
// whitespace to a single space. Every string input passes through here (or a
// case-folding variant) before validation.
func Sanitize(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SanitizeUpper sanitizes and uppercases code-like fields (school code,
// license number, PAN, IFSC, registration number).
func SanitizeUpper(s string) string {
	return strings.ToUpper(Sanitize(s))
}

// SanitizeLower sanitizes and lowercases email and UPI addresses.
func SanitizeLower(s string) string {
	return strings.ToLower(Sanitize(s))
}

// SanitizePtr applies fn to the pointed-at string, leaving nil untouched.
func SanitizePtr(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	v := fn(*s)
	return &v
}
