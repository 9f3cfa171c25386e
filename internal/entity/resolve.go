package entity

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/roach88/ecoquery/internal/panel"
)

const (
	// MaxSuggestions caps the suggestion list of an UNKNOWN_ENTITY error.
	MaxSuggestions = 5

	// SuggestionCutoff is the minimum similarity for a suggestion.
	SuggestionCutoff = 0.6
)

// Resolve matches query to exactly one label in candidates.
//
// An exact normalized-key match wins regardless of any fuzzy scores. When
// two candidates share a key the later one wins; callers pass deduplicated
// labels so this only matters for labels differing in case or punctuation.
//
// If nothing matches exactly, Resolve returns a *panel.Error of kind
// UNKNOWN_ENTITY carrying up to MaxSuggestions labels whose similarity is at
// least SuggestionCutoff. Equal scores keep candidate order, so suggestion
// lists are reproducible.
func Resolve(query string, candidates []string) (string, error) {
	keys := make([]string, 0, len(candidates))
	byKey := make(map[string]string, len(candidates))
	for _, c := range candidates {
		k := Normalize(c)
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = c
	}

	key := Normalize(query)
	if label, ok := byKey[key]; ok {
		return label, nil
	}

	return "", panel.NewUnknownEntity(suggest(key, keys, byKey))
}

type scored struct {
	key   string
	score float64
}

// suggest ranks keys by similarity to key, keeping those at or above the
// cutoff. keys are in first-seen candidate order.
func suggest(key string, keys []string, byKey map[string]string) []string {
	var matches []scored
	for _, k := range keys {
		if s := Similarity(k, key); s >= SuggestionCutoff {
			matches = append(matches, scored{key: k, score: s})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}

	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = byKey[m.key]
	}
	return labels
}

// Similarity returns the SequenceMatcher ratio of a and b in [0, 1].
//
// The ratio is 2*M/T where M is the number of characters in matching blocks
// and T the total length of both strings. Two empty strings score 1.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(splitChars(a), splitChars(b))
	return m.Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
