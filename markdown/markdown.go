// Package markdown parses Markdown notes: it renders them to HTML and extracts the plain text that
// is searched and excerpted.
package markdown

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	highlighting "github.com/yuin/goldmark-highlighting"
)

// Document is a parsed and HTML-rendered Markdown document.
type Document struct {
	// Meta is the document's metadata in the Markdown "front matter", if any.
	Meta Metadata

	// Title is taken from the metadata (if it exists) or else from the text content of the first
	// heading.
	Title string

	// HTML is the rendered Markdown content.
	HTML []byte

	// Text is the plain text content, one block per paragraph, separated by blank lines.
	Text string

	// Blocks are the rune ranges in Text of paragraphs, list items, code blocks, and table rows
	// (but not headings).
	Blocks []Block

	// Sections are the headings, with their rune offsets in Text.
	Sections []Section

	// Tree is the tree of sections (used to show a table of contents).
	Tree []*SectionNode

	// Links are the link and image destinations, as written in the source.
	Links []Link
}

// Link is a link or image in a Document.
type Link struct {
	Destination string
	Image       bool
}

// Block is a [Start, End) range of rune offsets in a Document's Text.
type Block struct {
	Start, End int
}

// Section is a heading in a Document.
type Section struct {
	ID    string // the heading's HTML ID
	Title string // the heading's text
	Level int    // heading level (1-6)
	Start int    // rune offset of the heading text in the Document's Text
}

func newGoldmark(opt Options) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&extender{opt},
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
			),
		),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)
}

// Parse parses and HTML-renders a Markdown document (with optional metadata in the Markdown "front
// matter").
func Parse(input []byte, opt Options) (*Document, error) {
	meta, source, err := parseMetadata(input)
	if err != nil {
		return nil, errors.WithMessage(err, "parse front matter")
	}

	md := newGoldmark(opt)
	root := md.Parser().Parse(text.NewReader(source))
	sections := setHeadingIDs(root, source)

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, root); err != nil {
		return nil, errors.WithMessage(err, "render Markdown")
	}

	doc := &Document{
		Meta:     meta,
		HTML:     buf.Bytes(),
		Sections: sections,
		Tree:     newTree(sections),
		Links:    collectLinks(root),
	}
	doc.Text, doc.Blocks = extractText(root, source, doc.Sections)
	if meta.Title != "" {
		doc.Title = meta.Title
	} else {
		doc.Title = getTitle(root, source)
	}
	return doc, nil
}

func getTitle(node ast.Node, source []byte) string {
	if node.Kind() == ast.KindDocument {
		node = node.FirstChild()
	}
	if h, ok := node.(*ast.Heading); ok && h.Level == 1 {
		return inlineText(h, source)
	}
	return ""
}

func collectLinks(root ast.Node) []Link {
	var links []Link
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Link:
			links = append(links, Link{Destination: string(n.Destination)})
		case *ast.Image:
			links = append(links, Link{Destination: string(n.Destination), Image: true})
		}
		return ast.WalkContinue, nil
	})
	return links
}
