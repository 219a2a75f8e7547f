package query

import (
	"math"
	"sort"
	"strings"
)

// Query is a search query.
type Query struct {
	input  string // the original query input string
	tokens []token
}

// Parse parses a search query string. Terms are matched case-insensitively as literal substrings.
// A "quoted phrase" is a single term, and a term prefixed with "-" excludes documents containing
// it.
func Parse(queryStr string) Query {
	// Find unique token strings.
	uniq := map[string]struct{}{}
	var tokens []token
	for _, field := range splitFields(queryStr) {
		exclude := false
		if len(field) > 1 && strings.HasPrefix(field, "-") {
			exclude = true
			field = field[1:]
		}
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		key := field
		if exclude {
			key = "-" + field
		}
		if _, seen := uniq[key]; seen {
			continue
		}
		uniq[key] = struct{}{}
		tokens = append(tokens, newToken(field, exclude))
	}

	return Query{
		input:  queryStr,
		tokens: tokens,
	}
}

func (q Query) String() string { return q.input }

// Tokens returns the (lower-cased) terms that documents are matched against, excluding negated
// terms.
func (q Query) Tokens() []string {
	var strs []string
	for _, token := range q.tokens {
		if !token.exclude {
			strs = append(strs, token.str)
		}
	}
	return strs
}

// Match reports whether the title or text contains at least 1 match of the query and no match of
// an excluded term.
func (q Query) Match(title, text string) bool {
	matched := false
	for _, token := range q.tokens {
		found := token.pattern.MatchString(title) || token.pattern.MatchString(text)
		if token.exclude && found {
			return false
		}
		if !token.exclude && found {
			matched = true
		}
	}
	return matched
}

// MatchAll reports whether every included term occurs in s.
func (q Query) MatchAll(s string) bool {
	included := 0
	for _, token := range q.tokens {
		if token.exclude {
			continue
		}
		if !token.pattern.MatchString(s) {
			return false
		}
		included++
	}
	return included > 0
}

const maxMatchesPerDoc = 50

// Score scores the query match against the title and text.
func (q Query) Score(title, text string) float64 {
	tokensInTitle := 0
	tokensMatching := 0
	totalMatches := 0
	for _, token := range q.tokens {
		if token.exclude {
			continue
		}
		if token.pattern.MatchString(title) {
			tokensInTitle++
		}
		count := len(token.pattern.FindAllStringIndex(text, maxMatchesPerDoc))
		if count > 0 {
			tokensMatching++
		}
		totalMatches += count
	}

	return float64(tokensInTitle*500) + float64(tokensMatching)*50*math.Pow(4, float64(tokensMatching)) + float64(totalMatches)/float64(len(text)+1)
}

// Match is a [start, end) range of rune offsets of a match.
type Match [2]int

// FindAllIndex returns a slice of all query match indexes in the text, as rune offsets sorted by
// start and then end. Matches of different terms may overlap.
func (q Query) FindAllIndex(text string) []Match {
	var matches []Match
	for _, token := range q.tokens {
		if token.exclude {
			continue
		}
		for _, m := range token.pattern.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{m[0], m[1]})
		}
	}
	if len(matches) == 0 {
		return nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i][0] < matches[j][0] || (matches[i][0] == matches[j][0] && matches[i][1] < matches[j][1])
	})
	return toRuneOffsets(text, matches)
}

// toRuneOffsets converts byte-offset matches (sorted by start) into rune offsets.
func toRuneOffsets(text string, matches []Match) []Match {
	runeAt := make([]int, len(text)+1)
	for i := range runeAt {
		runeAt[i] = -1
	}
	n := 0
	for i := range text {
		runeAt[i] = n
		n++
	}
	runeAt[len(text)] = n
	for i := 1; i < len(text); i++ {
		if runeAt[i] == -1 {
			runeAt[i] = runeAt[i-1] // inside a multi-byte rune
		}
	}

	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{runeAt[m[0]], runeAt[m[1]]}
	}
	return out
}
