package match

import (
	"fmt"
	"sort"
	"strings"
)

// MinSimilarity is the similarity a candidate needs to be suggested.
const MinSimilarity = 0.5

// MaxSuggestions bounds the number of names returned by Suggest.
const MaxSuggestions = 3

// Normalize lowercases a name and strips '_', '-' and spaces, so that
// "house_number" and "HouseNumber" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Suggest returns up to MaxSuggestions candidates similar to name, most
// similar first. Ties keep alphabetical order. name itself is never
// suggested.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	var found []scored

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == name || seen[c] {
			continue
		}
		seen[c] = true

		if score := Similarity(name, c); score >= MinSimilarity {
			found = append(found, scored{c, score})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score > found[j].score
		}
		return found[i].name < found[j].name
	})

	res := make([]string, 0, min(len(found), MaxSuggestions))
	for i := 0; i < len(found) && i < MaxSuggestions; i++ {
		res = append(res, found[i].name)
	}

	return res
}

// Hint formats suggestions as an error message suffix, e.g.
// " (did you mean Fruit?)". It is empty without suggestions.
func Hint(name string, candidates []string) string {
	suggestions := Suggest(name, candidates)

	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(" (did you mean %s?)", suggestions[0])
	default:
		return fmt.Sprintf(" (did you mean one of %s?)", strings.Join(suggestions, ", "))
	}
}
