package common

import "strings"

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// RuneLen counts the characters of s after trimming surrounding space.
func RuneLen(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}
