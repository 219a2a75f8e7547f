package notesearch

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	pathpkg "path"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch/internal/search"
	"github.com/sourcegraph/notesearch/markdown"
	"go.uber.org/zap"
)

// Notebook represents a notebook of Markdown notes, with the templates used to render them.
type Notebook struct {
	// Content is the file system containing the Markdown notes and assets (e.g., images) embedded
	// in them.
	Content http.FileSystem

	// Templates is the file system containing the Go html/template templates used to render pages.
	Templates http.FileSystem

	// Base is the base URL (typically including only the path, such as "/" or "/notes/") where the
	// notebook is available.
	Base *url.URL

	// SearchOptions configures search result excerpts.
	SearchOptions search.Options

	// Logger receives request and search logs. If nil, nothing is logged.
	Logger *zap.Logger
}

func (n *Notebook) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

func (n *Notebook) base() *url.URL {
	if n.Base == nil {
		return &url.URL{Path: "/"}
	}
	return n.Base
}

// newNote creates a new Note in the notebook.
func (n *Notebook) newNote(filePath string, data []byte, lastEdit time.Time) (*Note, error) {
	urlPathPrefix := strings.TrimPrefix(pathpkg.Dir(filePath)+"/", "/")
	if urlPathPrefix == "./" {
		urlPathPrefix = ""
	}

	doc, err := markdown.Parse(data, markdown.Options{
		Base: n.base().ResolveReference(&url.URL{Path: urlPathPrefix}),
	})
	if err != nil {
		return nil, errors.WithMessage(err, fmt.Sprintf("parse Markdown for %s", filePath))
	}
	return &Note{
		Path:     contentFilePathToPath(filePath),
		FilePath: filePath,
		Data:     data,
		Doc:      *doc,
		LastEdit: lastEdit,
	}, nil
}

// AllNotes returns a list of all notes in the notebook, ordered by file path.
func (n *Notebook) AllNotes(ctx context.Context) ([]*Note, error) {
	var notes []*Note
	err := WalkFileSystem(n.Content, isNote, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, modTime, err := readFileModTime(n.Content, path)
		if err != nil {
			return err
		}
		note, err := n.newNote(path, data, modTime)
		if err != nil {
			return err
		}
		notes = append(notes, note)
		return nil
	})
	return notes, err
}

// ResolveNote looks up the note at the given path (which generally comes from a URL). The path may
// omit the ".md" file extension and the "/index" or "/index.md" suffix.
func (n *Notebook) ResolveNote(path string) (*Note, error) {
	filePath, data, modTime, err := resolveAndReadAll(n.Content, path)
	if err != nil {
		return nil, err
	}
	return n.newNote(filePath, data, modTime)
}

// noteURL returns the URL of the note page at path.
func (n *Notebook) noteURL(path string) string {
	return n.base().ResolveReference(&url.URL{Path: path}).String()
}

// PageData is the data available to the HTML template used to render a note page.
type PageData struct {
	Path string // note path requested

	// NotFoundError is whether the requested note was not found.
	NotFoundError bool

	// Note is the note, when it is found.
	Note *Note
}

// renderNotePage renders a note page using the document template.
func (n *Notebook) renderNotePage(data *PageData) ([]byte, error) {
	tmpl, err := n.getTemplate(documentTemplateName, template.FuncMap{
		"markdown": func(note *Note) template.HTML {
			return template.HTML(note.Doc.HTML)
		},
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
