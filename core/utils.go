package core

import "strings"

// CleanString trims surrounding whitespace from s. Pass lower to also
// fold it to lower case, as done for emails before they reach the
// identity provider.
func CleanString(s string, lower ...bool) string {
	cleaned := strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		cleaned = strings.ToLower(cleaned)
	}
	return cleaned
}
