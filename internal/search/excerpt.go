package search

import (
	"strings"
)

// previewChars is the length, in runes, of the preview shown for a document without snippets.
const previewChars = 200

// preview returns the beginning of text, at most maxChars runes long. If the cut falls mid-text,
// it is moved back to just after the last sentence or line break, when there is one.
func preview(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return strings.TrimSpace(text)
	}

	const breakChars = ".\n"

	end := maxChars
	if index := strings.LastIndexAny(string(runes[:end]), breakChars); index > 0 {
		return strings.TrimSpace(string(runes[:end])[:index+1])
	}
	return strings.TrimSpace(string(runes[:end]))
}
