package notesearch

import (
	"bytes"
	"context"
	"html"
	"html/template"
	"time"

	"github.com/sourcegraph/notesearch/internal/search"
	"github.com/sourcegraph/notesearch/internal/search/index"
	"github.com/sourcegraph/notesearch/internal/search/query"
	"github.com/sourcegraph/notesearch/snippet"
	"go.uber.org/zap"
)

// Search searches all notes for a query.
func (n *Notebook) Search(ctx context.Context, queryStr string) (*search.Result, error) {
	return n.search(ctx, queryStr, n.SearchOptions)
}

func (n *Notebook) search(ctx context.Context, queryStr string, opt search.Options) (*search.Result, error) {
	start := time.Now()
	notes, err := n.AllNotes(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := index.New()
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		if err := idx.Add(ctx, indexDocument(note, n.noteURL(note.Path))); err != nil {
			return nil, err
		}
	}

	result, err := search.Search(ctx, query.Parse(queryStr), idx, opt)
	if err != nil {
		return nil, err
	}
	n.logger().Debug("search",
		zap.String("query", queryStr),
		zap.Int("notes", len(notes)),
		zap.Int("total", result.Total),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

func indexDocument(note *Note, url string) index.Document {
	doc := index.Document{
		ID:       index.DocID(note.FilePath),
		Title:    note.Doc.Title,
		URL:      url,
		Text:     note.Doc.Text,
		LastEdit: note.LastEdit,
		Passages: make([]snippet.Range, len(note.Doc.Blocks)),
		Sections: make([]index.Section, len(note.Doc.Sections)),
	}
	for i, b := range note.Doc.Blocks {
		doc.Passages[i] = snippet.Range{Start: b.Start, End: b.End}
	}
	for i, s := range note.Doc.Sections {
		doc.Sections[i] = index.Section(s)
	}
	return doc
}

// snippetHTML renders a snippet with <hl> and <b> elements.
func snippetHTML(s snippet.Snippet) template.HTML {
	return template.HTML(snippet.Render(snippet.HTMLFormatter{}, s))
}

// titleHTML renders a result's title. A title containing every query term is highlighted as a
// whole; otherwise only its keyword matches are marked.
func titleHTML(dr search.DocumentResult) template.HTML {
	if dr.TitleMatch {
		return template.HTML("<hl>" + html.EscapeString(dr.Title) + "</hl>")
	}
	return snippetHTML(dr.TitleSnippet)
}

func (n *Notebook) renderSearchPage(queryStr string, result *search.Result) ([]byte, error) {
	tmpl, err := n.getTemplate(searchTemplateName, template.FuncMap{
		"snippet": snippetHTML,
		"title":   titleHTML,
	})
	if err != nil {
		return nil, err
	}

	data := struct {
		Query  string
		Result *search.Result
	}{
		Query:  queryStr,
		Result: result,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type apiResponse struct {
	Code    int         `json:"code"`
	Status  string      `json:"status"`
	Content interface{} `json:"content,omitempty"`
}

type apiSearchContent struct {
	Query   string            `json:"query"`
	Total   int               `json:"total"`
	Results []apiSearchResult `json:"results"`
}

type apiSearchResult struct {
	Rank     int      `json:"rank"`
	Path     string   `json:"path"`
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Snippets []string `json:"snippets"`
	Preview  string   `json:"preview,omitempty"`
}

// newAPISearchContent converts a search result for the JSON API. Unquoted results carry plain text
// instead of marked HTML.
func newAPISearchContent(result *search.Result, quoted bool) apiSearchContent {
	content := apiSearchContent{
		Query:   result.Query,
		Total:   result.Total,
		Results: make([]apiSearchResult, len(result.DocumentResults)),
	}
	for i, dr := range result.DocumentResults {
		r := apiSearchResult{
			Rank:     dr.Rank,
			Path:     contentFilePathToPath(string(dr.ID)),
			URL:      dr.URL,
			Title:    dr.Title,
			Snippets: make([]string, len(dr.Snippets)),
			Preview:  dr.Preview,
		}
		if quoted {
			r.Title = string(titleHTML(dr))
		}
		for j, s := range dr.Snippets {
			if quoted {
				r.Snippets[j] = string(snippetHTML(s.Snippet))
			} else {
				r.Snippets[j] = snippet.Render(snippet.PlainFormatter{}, s.Snippet)
			}
		}
		content.Results[i] = r
	}
	return content
}
