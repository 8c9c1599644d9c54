package ui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// bestMatchIndex picks the item the query most plausibly means: exact fold,
// then prefix, then substring, then the closest fuzzy rank. Returns -1 when
// nothing matches at all.
func bestMatchIndex(names []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(names) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return i
		}
	}
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i
		}
	}
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(names) {
		return -1
	}
	return best.OriginalIndex
}
