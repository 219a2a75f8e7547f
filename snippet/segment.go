package snippet

// Fragment is a piece of a Snippet: either Text or a Marker.
type Fragment interface {
	isFragment()
}

// Text is a verbatim slice of the source text.
type Text string

// Marker opens or closes a marked range of the given kind.
type Marker struct {
	Kind Kind
	Edge Edge
}

func (Text) isFragment()   {}
func (Marker) isFragment() {}

// Snippet is one excerpt of a text. Concatenating its Text fragments yields exactly the runes
// [Start, End) of the source text.
type Snippet struct {
	Start, End int
	Fragments  []Fragment
}

// Text returns the excerpt text without markers.
func (s Snippet) Text() string {
	var n int
	for _, f := range s.Fragments {
		if t, ok := f.(Text); ok {
			n += len(t)
		}
	}
	b := make([]byte, 0, n)
	for _, f := range s.Fragments {
		if t, ok := f.(Text); ok {
			b = append(b, t...)
		}
	}
	return string(b)
}

// snippetRanges computes the padded text range of each merged cluster. A window never extends over
// the previous window or into the next cluster.
//
// Before clamping, a padded window is exactly windowSize runes, with an odd remainder on the left.
func snippetRanges(clusters [][]tag, textLen, windowSize int) []Range {
	ranges := make([]Range, len(clusters))
	for i, cluster := range clusters {
		start, end := cluster[0].loc, cluster[len(cluster)-1].loc
		padding := windowSize - (end - start)
		if padding <= 0 {
			ranges[i] = Range{Start: start, End: end}
			continue
		}

		right := padding / 2
		start -= padding - right
		if start < 0 {
			start = 0
		}
		if i > 0 && start < ranges[i-1].End {
			start = ranges[i-1].End
		}

		end += right
		if end > textLen {
			end = textLen
		}
		if i+1 < len(clusters) && end > clusters[i+1][0].loc {
			end = clusters[i+1][0].loc
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}

// interleave slices text over r and places the markers of tags between the slices.
func interleave(text []rune, r Range, tags []tag) []Fragment {
	fragments := make([]Fragment, 0, 2*len(tags)+1)
	pos := r.Start
	for _, t := range tags {
		if t.loc != pos {
			fragments = append(fragments, Text(text[pos:t.loc]))
		}
		fragments = append(fragments, Marker{Kind: t.kind, Edge: t.edge})
		pos = t.loc
	}
	if pos < r.End {
		fragments = append(fragments, Text(text[pos:r.End]))
	}
	return fragments
}

func segment(text []rune, clusters [][]tag, windowSize int) []Snippet {
	ranges := snippetRanges(clusters, len(text), windowSize)
	snippets := make([]Snippet, len(clusters))
	for i, cluster := range clusters {
		snippets[i] = Snippet{
			Start:     ranges[i].Start,
			End:       ranges[i].End,
			Fragments: interleave(text, ranges[i], cluster),
		}
	}
	return snippets
}
