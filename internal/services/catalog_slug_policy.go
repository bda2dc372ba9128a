package services

import (
	"regexp"
	"strings"
)

var (
	slugWhitespacePattern   = regexp.MustCompile(`\s+`)
	slugInvalidCharsPattern = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a URL slug from a display name: lowercase, whitespace runs
// collapsed to hyphens, everything outside [a-z0-9-] dropped.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugWhitespacePattern.ReplaceAllString(slug, "-")
	return slugInvalidCharsPattern.ReplaceAllString(slug, "")
}
