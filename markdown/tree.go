package markdown

// SectionNode is a section and its children.
type SectionNode struct {
	Title    string         // section title
	URL      string         // section URL (an anchor link)
	Level    int            // heading level (1–6)
	Children []*SectionNode // subsections
}

func newTree(sections []Section) []*SectionNode {
	stack := []*SectionNode{{}}
	cur := func() *SectionNode { return stack[len(stack)-1] }
	for _, s := range sections {
		for s.Level <= cur().Level {
			stack = stack[:len(stack)-1]
		}

		sn := &SectionNode{
			Title: s.Title,
			URL:   "#" + s.ID,
			Level: s.Level,
		}
		cur().Children = append(cur().Children, sn)
		stack = append(stack, sn)
	}
	return stack[0].Children
}
