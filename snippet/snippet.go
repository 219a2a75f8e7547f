// Package snippet builds short excerpts of a long text for search results. An excerpt marks two
// independent sets of rune ranges (highlight and bold) with correctly nested markers, and is sized
// to stay close to a target window.
//
// The package does no formatting of its own; a Formatter turns a Snippet into HTML, plain text or
// styled terminal output.
package snippet

import (
	"github.com/pkg/errors"
)

// DefaultWindowSize is the target excerpt length, in runes, used by the search UI.
const DefaultWindowSize = 200

// ErrInvalidWindowSize is returned by Generate when the window size is not positive.
var ErrInvalidWindowSize = errors.New("snippet: window size must be positive")

// Generate returns the excerpts of text that contain the highlight and bold ranges, in text order.
// Excerpts are padded to about windowSize runes and never overlap.
//
// Ranges are rune offsets. Ranges extending past the text are clamped and empty ones are dropped.
// If text is empty or no valid range remains, Generate returns no snippets and no error.
//
// Generate is safe for concurrent use.
func Generate(text string, highlight, bold []Range, windowSize int) ([]Snippet, error) {
	if windowSize <= 0 {
		return nil, errors.WithMessagef(ErrInvalidWindowSize, "got %d", windowSize)
	}

	runes := []rune(text)
	highlight = normalizeRanges(highlight, len(runes))
	bold = normalizeRanges(bold, len(runes))
	if len(highlight) == 0 && len(bold) == 0 {
		return nil, nil
	}

	clusters := clusterTags(buildTags(highlight, bold))
	return segment(runes, mergeClusters(clusters, windowSize), windowSize), nil
}

// GenerateOne marks ranges (as Bold) over the whole text, with no windowing. It is meant for short
// strings such as titles.
func GenerateOne(text string, ranges []Range) Snippet {
	runes := []rune(text)
	tags := buildTags(nil, normalizeRanges(ranges, len(runes)))
	whole := Range{Start: 0, End: len(runes)}
	return Snippet{
		Start:     whole.Start,
		End:       whole.End,
		Fragments: interleave(runes, whole, tags),
	}
}
