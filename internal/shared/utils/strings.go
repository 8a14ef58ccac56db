package utils

import "strings"

// Truncate cuts s down to at most max runes.
// Rune-based so multi-byte characters are never split in half.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// CleanText trims surrounding whitespace and caps the result at max runes.
// Truncation happens after trimming, so the cap applies to visible content.
func CleanText(s string, max int) string {
	return Truncate(strings.TrimSpace(s), max)
}

// DefaultIfBlank returns fallback when s is empty or whitespace-only.
func DefaultIfBlank(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
