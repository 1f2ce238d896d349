package h

import "strings"

// ContainsFold reports membership with case-insensitive comparison.
func ContainsFold(arr []string, str string) bool {
	for _, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(str)) {
			return true
		}
	}
	return false
}

// SplitCsv splits a comma-joined value into trimmed tokens, dropping empty ones.
func SplitCsv(value string) []string {
	var out []string
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
