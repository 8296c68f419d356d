package utils

import "github.com/sahilm/fuzzy"

// SuggestType returns the allowed type that best matches value, or "" when
// nothing matches. It is only used for hints; validation stays exact.
func SuggestType(value string, allowed []string) string {
	value = NormalizeType(value)
	if value == "" {
		return ""
	}

	// "featt" is not a subsequence of "feat", so also try the allowed types against the input
	if matches := fuzzy.Find(value, allowed); len(matches) > 0 {
		return matches[0].Str
	}
	best := ""
	bestLen := 0
	for _, candidate := range allowed {
		if len(fuzzy.Find(candidate, []string{value})) > 0 && len(candidate) > bestLen {
			best = candidate
			bestLen = len(candidate)
		}
	}
	return best
}
