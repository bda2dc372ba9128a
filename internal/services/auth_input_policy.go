package services

import (
	"regexp"
	"strings"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

var (
	angleBracketPattern       = regexp.MustCompile(`[<>]`)
	javascriptSchemePattern   = regexp.MustCompile(`(?i)javascript:`)
	inlineEventHandlerPattern = regexp.MustCompile(`(?i)on\w+=`)
)

// SanitizeInput strips the markup fragments the storefront never accepts in
// free-text fields and trims surrounding whitespace.
func SanitizeInput(raw string) string {
	cleaned := angleBracketPattern.ReplaceAllString(raw, "")
	cleaned = javascriptSchemePattern.ReplaceAllString(cleaned, "")
	cleaned = inlineEventHandlerPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// NormalizeEmail sanitizes and lowercases an email. All store lookups use the
// normalized form, which is what makes email uniqueness case-insensitive.
func NormalizeEmail(raw string) string {
	return strings.ToLower(SanitizeInput(raw))
}

func validateSignupEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return &ValidationError{Message: "please enter a valid email address"}
	}
	return nil
}

func validateLoginEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Message: "please enter a valid email"}
	}
	return nil
}

func validateSignupName(name string) error {
	if len(name) < minNameLength {
		return &ValidationError{Message: "please enter your name (at least 2 characters)"}
	}
	return nil
}

func validateSignupPassword(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{Message: "password must be at least 6 characters"}
	}
	return nil
}
