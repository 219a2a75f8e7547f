package snippet

// Kind is the category of a marked range.
type Kind int

const (
	Highlight Kind = iota // a passage that answers the query
	Bold                  // a literal keyword match
)

func (k Kind) String() string {
	switch k {
	case Highlight:
		return "hl"
	case Bold:
		return "b"
	default:
		return "unknown"
	}
}

// Edge tells whether a marker opens or closes a marked range.
type Edge int

const (
	Open Edge = iota
	Close
)

func (e Edge) String() string {
	if e == Open {
		return "open"
	}
	return "close"
}

// Range is a half-open [Start, End) interval of rune offsets into a text.
type Range struct {
	Start, End int
}

// normalizeRanges clamps ranges into [0, n] and drops those that are empty afterwards. Ranges come
// from a best-effort search backend, so invalid ones are discarded rather than reported.
func normalizeRanges(ranges []Range, n int) []Range {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Start < 0 {
			r.Start = 0
		}
		if r.End > n {
			r.End = n
		}
		if r.Start >= r.End {
			continue
		}
		out = append(out, r)
	}
	return out
}
