package search

import (
	"sort"
	"strings"

	"github.com/sourcegraph/notesearch/snippet"
)

// minPassageCoverage is the fraction of distinct query terms a passage must contain to be
// highlighted.
const minPassageCoverage = 0.5

// passageRanges picks the passages of text that best answer the query: those containing at least
// minPassageCoverage of the terms. At most max passages are returned, in text order.
func passageRanges(text string, passages []snippet.Range, tokens []string, max int) []snippet.Range {
	if len(tokens) == 0 || max <= 0 {
		return nil
	}
	runes := []rune(text)

	type scored struct {
		r        snippet.Range
		coverage float64
	}
	var candidates []scored
	for _, p := range passages {
		if p.Start < 0 || p.End > len(runes) || p.Start >= p.End {
			continue
		}
		lower := strings.ToLower(string(runes[p.Start:p.End]))
		found := 0
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				found++
			}
		}
		coverage := float64(found) / float64(len(tokens))
		if coverage >= minPassageCoverage {
			candidates = append(candidates, scored{r: p, coverage: coverage})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].coverage > candidates[j].coverage })
	if len(candidates) > max {
		candidates = candidates[:max]
	}

	ranges := make([]snippet.Range, len(candidates))
	for i, c := range candidates {
		ranges[i] = c.r
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}
