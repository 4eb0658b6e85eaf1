// Package shared provides common utility functions used across multiple
// packages in the mbti-chat codebase.
package shared

import (
	"strings"
)

// NormalizeRequirementName lowercases a Python package name and replaces
// underscores and dots with hyphens, following PEP 503 normalization.
func NormalizeRequirementName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", ".", "-")
	return replacer.Replace(lower)
}

// Truncate shortens text to at most limit runes, appending an ellipsis
// when anything was cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
