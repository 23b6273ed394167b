package common

import "strings"

// AnyContainsFold reports whether any of fields contains sub, ignoring case.
// An empty sub matches nothing.
func AnyContainsFold(sub string, fields ...string) bool {
	if sub == "" {
		return false
	}
	sub = strings.ToLower(sub)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), sub) {
			return true
		}
	}
	return false
}
