package search

import (
	"context"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch/internal/search/index"
	"github.com/sourcegraph/notesearch/internal/search/query"
	"github.com/sourcegraph/notesearch/snippet"
)

// WholeText is the WindowSize that excerpts a document's whole text as one snippet.
const WholeText = -1

// Options configures how search results are excerpted.
type Options struct {
	WindowSize  int // target snippet length in runes, or WholeText
	MaxSnippets int // maximum number of snippets per document
	MaxPassages int // maximum number of highlighted passages per document
	Limit       int // maximum number of document results

	// SkipTitle leaves titles unmarked, with no TitleMatch.
	SkipTitle bool
}

func (o Options) withDefaults() Options {
	if o.WindowSize == 0 {
		o.WindowSize = snippet.DefaultWindowSize
	}
	if o.MaxSnippets == 0 {
		o.MaxSnippets = 5
	}
	if o.MaxPassages == 0 {
		o.MaxPassages = 3
	}
	if o.Limit == 0 {
		o.Limit = 30
	}
	return o
}

// Result is the result of a search.
type Result struct {
	Query           string           // the query input string
	DocumentResults []DocumentResult // document results
	Total           int              // total number of document results
}

// DocumentResult is the result of a search for a single document
type DocumentResult struct {
	index.DocumentResult
	Rank int // 1-based rank in the result list

	// TitleSnippet is the whole title with query matches marked.
	TitleSnippet snippet.Snippet

	// TitleMatch is whether the title contains every query term.
	TitleMatch bool

	Snippets []SnippetResult

	// Preview is the beginning of the document, for documents without snippets (such as those
	// matching only in the title).
	Preview string
}

// SnippetResult is an excerpt of a document and the section it falls in.
type SnippetResult struct {
	snippet.Snippet
	SectionID    string   // the URL fragment (without "#") of the section, or empty if in the first section
	SectionStack []string // the stack of section IDs
}

// Search searches the index and excerpts each matching document. Keyword matches are marked bold,
// and the passages containing most of the query terms are highlighted.
func Search(ctx context.Context, query query.Query, index *index.Index, opt Options) (*Result, error) {
	opt = opt.withDefaults()
	result0, err := index.Search(ctx, query, opt.Limit)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Query:           query.String(),
		DocumentResults: make([]DocumentResult, len(result0.DocumentResults)),
		Total:           result0.Total,
	}
	for i, dr := range result0.DocumentResults {
		r, err := documentResult(dr, query, opt)
		if err != nil {
			return nil, errors.WithMessagef(err, "snippets for %q", dr.ID)
		}
		r.Rank = i + 1
		result.DocumentResults[i] = r
	}
	return result, nil
}

func documentResult(dr index.DocumentResult, q query.Query, opt Options) (DocumentResult, error) {
	highlight := passageRanges(dr.Text, dr.Passages, q.Tokens(), opt.MaxPassages)
	bold := mergeOverlapping(q.FindAllIndex(dr.Text))
	windowSize := opt.WindowSize
	if windowSize == WholeText {
		// Wider than twice the text, so all clusters merge and the padding reaches both ends.
		windowSize = 2*utf8.RuneCountInString(dr.Text) + 1
	}
	snippets, err := snippet.Generate(dr.Text, highlight, bold, windowSize)
	if err != nil {
		return DocumentResult{}, err
	}
	if len(snippets) > opt.MaxSnippets {
		snippets = snippets[:opt.MaxSnippets]
	}

	r := DocumentResult{
		DocumentResult: dr,
		Snippets:       make([]SnippetResult, len(snippets)),
	}
	if opt.SkipTitle {
		r.TitleSnippet = snippet.GenerateOne(dr.Title, nil)
	} else {
		r.TitleSnippet = snippet.GenerateOne(dr.Title, mergeOverlapping(q.FindAllIndex(dr.Title)))
		r.TitleMatch = q.MatchAll(dr.Title)
	}
	for i, s := range snippets {
		id, stack := sectionAt(dr.Sections, firstMarkOffset(s))
		r.Snippets[i] = SnippetResult{Snippet: s, SectionID: id, SectionStack: stack}
	}
	if len(snippets) == 0 {
		r.Preview = preview(dr.Text, previewChars)
	}
	return r, nil
}

// mergeOverlapping converts sorted matches to ranges, joining matches that overlap. Overlapping
// terms (such as "note" and "notebook") would otherwise mark the same text twice.
func mergeOverlapping(matches []query.Match) []snippet.Range {
	if len(matches) == 0 {
		return nil
	}
	merged := make([]snippet.Range, 0, len(matches))
	cur := snippet.Range{Start: matches[0][0], End: matches[0][1]}
	for _, m := range matches[1:] {
		if m[0] < cur.End {
			if m[1] > cur.End {
				cur.End = m[1]
			}
			continue
		}
		merged = append(merged, cur)
		cur = snippet.Range{Start: m[0], End: m[1]}
	}
	return append(merged, cur)
}

// firstMarkOffset returns the rune offset of the first marker in s.
func firstMarkOffset(s snippet.Snippet) int {
	offset := s.Start
	for _, f := range s.Fragments {
		t, ok := f.(snippet.Text)
		if !ok {
			break
		}
		offset += len([]rune(string(t)))
	}
	return offset
}
