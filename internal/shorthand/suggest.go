package shorthand

import (
	"slices"

	"github.com/agext/levenshtein"
	"github.com/sahilm/fuzzy"
)

// maxSuggestDistance is the largest edit distance still offered as a typo
// fix. Short inputs get a tighter bound.
const maxSuggestDistance = 2

// Suggest returns up to limit names close to input: fuzzy subsequence
// matches first (best score first), then names within a small edit distance.
// Extra names (user aliases) are considered alongside the registry keys.
func (r *Registry) Suggest(input string, limit int, extra ...string) []string {
	if input == "" || limit <= 0 {
		return nil
	}

	names := append(r.Keys(), extra...)
	var out []string
	add := func(name string) bool {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
		return len(out) >= limit
	}

	for _, m := range fuzzy.Find(input, names) {
		if add(m.Str) {
			return out
		}
	}

	maxDist := min(maxSuggestDistance, len(input)/2)
	for _, name := range names {
		if levenshtein.Distance(input, name, nil) <= maxDist {
			if add(name) {
				return out
			}
		}
	}
	return out
}
