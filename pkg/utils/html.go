package utils

import "regexp"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTMLTags deletes every angle-bracket tag from s. Entities are left as is.
func StripHTMLTags(s string) string {
	if s == "" {
		return ""
	}
	return tagPattern.ReplaceAllString(s, "")
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
