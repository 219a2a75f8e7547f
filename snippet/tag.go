package snippet

import "sort"

// tag is an open or close event at a rune offset.
type tag struct {
	loc  int
	kind Kind
	edge Edge
}

func rangesToTags(ranges []Range, kind Kind) []tag {
	tags := make([]tag, 0, 2*len(ranges))
	for _, r := range ranges {
		tags = append(tags, tag{loc: r.Start, kind: kind, edge: Open}, tag{loc: r.End, kind: kind, edge: Close})
	}
	return tags
}

// buildTags converts both range sets into one location-sorted tag stream. Tags at the same location
// keep their source order (highlight before bold, open before close within a range).
func buildTags(highlight, bold []Range) []tag {
	tags := rangesToTags(highlight, Highlight)
	tags = append(tags, rangesToTags(bold, Bold)...)
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].loc < tags[j].loc })
	return tags
}
