package search

import (
	"github.com/sourcegraph/notesearch/internal/search/index"
)

// sectionAt returns the ID of the section containing the rune offset, and the stack of section IDs
// from the outermost heading down to it. The document title heading (a level-1 heading at the very
// start) and text before the first heading have the empty ID.
func sectionAt(sections []index.Section, offset int) (id string, stack []string) {
	type stackEntry struct {
		id    string
		level int
	}
	entries := []stackEntry{{}}
	cur := func() stackEntry { return entries[len(entries)-1] }

	for i, s := range sections {
		if s.Start > offset {
			break
		}
		for len(entries) > 1 && s.Level <= cur().level {
			entries = entries[:len(entries)-1]
		}

		// For the document title heading, use the empty ID.
		id := s.ID
		if i == 0 && s.Level == 1 && s.Start == 0 {
			id = ""
		}
		entries = append(entries, stackEntry{id: id, level: s.Level})
	}

	stack = make([]string, len(entries))
	for i, e := range entries {
		stack[i] = e.id
	}
	return cur().id, stack
}
