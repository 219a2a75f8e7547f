package snippet

// clusterTags groups a sorted tag stream into clusters separated by stretches of unmarked text. A
// cluster ends exactly when no tag is left open.
//
// When a close tag does not match the innermost open tag (a highlight and a bold range overlap
// without nesting), the tags opened after the one being closed are closed at the same location and
// reopened right after it, so that every kind stays well-nested.
//
// Overlapping ranges of the same kind are not repaired: the innermost tag of that kind is closed,
// which keeps the stream balanced but nests the same kind inside itself.
func clusterTags(tags []tag) [][]tag {
	var (
		stack    []tag
		clusters [][]tag
		cur      []tag
	)
	for _, t := range tags {
		switch t.edge {
		case Open:
			stack = append(stack, t)
			cur = append(cur, t)

		case Close:
			idx := lastIndexOfKind(stack, t.kind)
			if idx == -1 {
				// Unmatched close; nothing to balance it against.
				continue
			}
			if idx == len(stack)-1 {
				stack = stack[:idx]
				cur = append(cur, t)
				break
			}

			above := stack[idx+1:]
			reopen := make([]tag, len(above))
			for i := len(above) - 1; i >= 0; i-- {
				cur = append(cur, tag{loc: t.loc, kind: above[i].kind, edge: Close})
				reopen[i] = tag{loc: t.loc, kind: above[i].kind, edge: Open}
			}
			stack = append(stack[:idx], reopen...)
			cur = append(cur, t)
			cur = append(cur, reopen...)
		}

		if len(stack) == 0 && len(cur) > 0 {
			clusters = append(clusters, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		// Only reachable with unbalanced input; keep what was collected.
		clusters = append(clusters, cur)
	}
	return clusters
}

func lastIndexOfKind(stack []tag, kind Kind) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].kind == kind {
			return i
		}
	}
	return -1
}
