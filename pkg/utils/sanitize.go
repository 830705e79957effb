package utils

import (
	"html"
	"regexp"
	"strings"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// SanitizeHTML escapes HTML entities to prevent XSS.
// Applied to chat message content before it is stored.
func SanitizeHTML(input string) string {
	return html.EscapeString(input)
}

// StripHTML removes all HTML tags from a string.
func StripHTML(input string) string {
	return htmlTagRe.ReplaceAllString(input, "")
}

// NormalizeMessage trims whitespace and caps the length of a chat message.
func NormalizeMessage(input string, maxLen int) string {
	input = strings.TrimSpace(input)
	if len(input) > maxLen {
		input = input[:maxLen]
	}
	return input
}
