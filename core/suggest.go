package core

import (
	"github.com/sahilm/fuzzy"
)

// SuggestNames returns up to max known mod names that fuzzy-match the given
// name, best match first. Used to offer corrections for mistyped names.
func SuggestNames(name string, known []string, max int) []string {
	matches := fuzzy.Find(name, known)
	if len(matches) > max {
		matches = matches[:max]
	}
	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}
