package utils

import "strings"

// TrimQuotes trims surrounding whitespace and one pair of matching quotes, so paths
// pasted from a file manager ("C:\my dir\package.yml") are accepted as is
func TrimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
