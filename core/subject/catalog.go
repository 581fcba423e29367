// Package subject holds the fixed subject catalog shown on the home
// screen.
package subject

import "strings"

type Catalog []string

// Default mirrors the catalog the mobile client ships with.
var Default = Catalog{"C", "C++", "Java", "Python", "Swift", "Kotlin", "JavaScript", "HTML", "CSS", "Ruby"}

// Search returns the subjects matching `q` case-insensitively; an
// empty query returns the full catalog.
func (c Catalog) Search(q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	matches := make([]string, 0, len(c))
	for _, s := range c {
		if q == "" || strings.Contains(strings.ToLower(s), q) {
			matches = append(matches, s)
		}
	}
	return matches
}
