package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText strips all HTML from user-supplied text and trims whitespace.
// Forum text is stored as plain text, so nothing markup-like survives.
func CleanText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// CleanAll applies CleanText to every element.
func CleanAll(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if c := CleanText(v); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}
