package markdown

import (
	"fmt"

	"github.com/mozillazg/go-slugify"
	"github.com/yuin/goldmark/ast"
)

// setHeadingIDs sets a unique, slug-based "id" attribute on each heading and returns the headings
// in document order. Section offsets are filled in later, by extractText.
func setHeadingIDs(root ast.Node, source []byte) []Section {
	headingIDs := map[string]int{} // for generating unique heading IDs
	ensureUniqueHeadingID := func(id string) string {
		for count, found := headingIDs[id]; found; count, found = headingIDs[id] {
			tmp := fmt.Sprintf("%s-%d", id, count+1)

			if _, tmpFound := headingIDs[tmp]; !tmpFound {
				headingIDs[id] = count + 1
				id = tmp
			} else {
				id = id + "-1"
			}
		}

		if _, found := headingIDs[id]; !found {
			headingIDs[id] = 0
		}

		return id
	}

	var sections []Section
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := node.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		title := inlineText(h, source)
		id := slugify.Slugify(title)
		if id == "" {
			id = "section"
		}
		id = ensureUniqueHeadingID(id)
		h.SetAttributeString("id", []byte(id))

		sections = append(sections, Section{ID: id, Title: title, Level: h.Level})
		return ast.WalkSkipChildren, nil
	})
	return sections
}
