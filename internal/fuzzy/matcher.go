// Package fuzzy ranks preset names against a typed query.
package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type MatchResult struct {
	Text    string
	Score   int
	Index   int
	Matched []int
}

// MatchMany returns the texts matching pattern, best first. A limit of zero
// or less returns every match.
func MatchMany(pattern string, texts []string, limit int) []MatchResult {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}

	matches := fuzzy.Find(pattern, texts)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]MatchResult, len(matches))
	for i, m := range matches {
		results[i] = MatchResult{
			Text:    m.Str,
			Score:   m.Score,
			Index:   m.Index,
			Matched: m.MatchedIndexes,
		}
	}
	return results
}

// Suggest returns up to three candidates resembling name, for "did you
// mean" hints.
func Suggest(name string, candidates []string) []string {
	var out []string
	for _, m := range MatchMany(name, candidates, 3) {
		out = append(out, m.Text)
	}
	if len(out) > 0 {
		return out
	}

	// fall back to a case-insensitive substring match in either direction
	lower := strings.ToLower(name)
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, lower) || strings.Contains(lower, lc) {
			out = append(out, c)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}
