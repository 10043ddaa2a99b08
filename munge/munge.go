// Package munge provides the tag-cleaning transform applied to parsed
// keywords when tag cleaning is enabled.
package munge

import (
	"regexp"
	"strings"
)

const (
	minTagLength = 2
	maxTagLength = 100
)

var invalidTagChars = regexp.MustCompile(`[^a-zA-Z0-9\- _.]`)

// Tag normalizes a keyword to the portal's tag shape: lowercase, invalid
// characters collapsed to hyphens, clamped to the allowed length, padded
// when too short.
func Tag(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	tag = strings.ReplaceAll(tag, " ", "-")
	tag = invalidTagChars.ReplaceAllString(tag, "-")

	// Collapse runs of separators left behind by the substitutions.
	for strings.Contains(tag, "--") {
		tag = strings.ReplaceAll(tag, "--", "-")
	}
	tag = strings.Trim(tag, "-")

	if len(tag) > maxTagLength {
		tag = tag[:maxTagLength]
	}
	for len(tag) < minTagLength {
		tag += "_"
	}
	return tag
}
