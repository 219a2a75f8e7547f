package index

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch/snippet"
)

// DocID is a unique identifier of a document in an index.
type DocID string

// Section is a heading in a document's text.
type Section struct {
	ID    string // the URL fragment (without "#") of the heading
	Title string
	Level int // heading level (1-6)
	Start int // rune offset in the text where the section begins
}

// Document is a document to be indexed.
type Document struct {
	ID       DocID     // the document ID
	Title    string    // the document title
	URL      string    // the document URL
	Text     string    // the plain text content
	LastEdit time.Time // when the document was last modified

	// Passages are the rune ranges of the paragraph-level blocks of Text, in order.
	Passages []snippet.Range

	// Sections are the headings of Text, in order.
	Sections []Section
}

// Index is a search index.
type Index struct {
	docs []Document
	byID map[DocID]int
}

// New returns a new index.
func New() (*Index, error) {
	return &Index{byID: map[DocID]int{}}, nil
}

// Add adds a document to the index.
func (i *Index) Add(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return errors.New("index: document has empty ID")
	}
	if _, exists := i.byID[doc.ID]; exists {
		return errors.Errorf("index: duplicate document %q", doc.ID)
	}
	i.byID[doc.ID] = len(i.docs)
	i.docs = append(i.docs, doc)
	return nil
}

// Len returns the number of documents in the index.
func (i *Index) Len() int { return len(i.docs) }
