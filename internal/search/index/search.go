package index

import (
	"context"
	"sort"

	"github.com/sourcegraph/notesearch/internal/search/query"
)

// Result is the result of a search.
type Result struct {
	DocumentResults []DocumentResult // document results
	Total           int              // total number of document results
}

// DocumentResult is the result of a search for a single document.
type DocumentResult struct {
	Document
	Score float64
}

// Search performs a search against the index. If limit is positive, at most limit results are
// returned; Total counts all matching documents.
func (i *Index) Search(ctx context.Context, query query.Query, limit int) (*Result, error) {
	var documentResults []DocumentResult
	for _, doc := range i.docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if query.Match(doc.Title, doc.Text) {
			documentResults = append(documentResults, DocumentResult{
				Document: doc,
				Score:    query.Score(doc.Title, doc.Text),
			})
		}
	}
	sort.Slice(documentResults, func(i, j int) bool {
		return documentResults[i].Score > documentResults[j].Score || (documentResults[i].Score == documentResults[j].Score && documentResults[i].ID < documentResults[j].ID)
	})

	result := &Result{
		DocumentResults: documentResults,
		Total:           len(documentResults),
	}
	if limit > 0 && len(result.DocumentResults) > limit {
		result.DocumentResults = result.DocumentResults[:limit]
	}
	return result, nil
}
