package markdown

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Options customize how Parse renders the Markdown document.
type Options struct {
	// Base is the base URL (typically including only the path, such as "/" or "/notes/") to use
	// when resolving relative links.
	Base *url.URL
}

var _ goldmark.Extender = (*extender)(nil)

type extender struct {
	Options
}

func (e *extender) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&nodeRenderer{e.Options}, 10),
		),
	)
}

var _ renderer.NodeRenderer = (*nodeRenderer)(nil)

type nodeRenderer struct {
	Options
}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *nodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<h")
	_ = w.WriteByte("0123456"[n.Level])
	if n.Attributes() != nil {
		goldmarkhtml.RenderAttributes(w, node, goldmarkhtml.HeadingAttributeFilter)
	}
	_ = w.WriteByte('>')

	// Add "#" anchor links to headings so search results can link to sections of a note.
	if id := getAttributeID(n); id != "" {
		_, _ = fmt.Fprintf(w, `<a name="%[1]s" class="anchor" href="#%[1]s" rel="nofollow" aria-hidden="true"></a>`, id)
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderBlockquote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	var first []byte
	if p := node.FirstChild(); p != nil && p.Lines().Len() > 0 {
		seg := p.Lines().At(0)
		first = seg.Value(source)
	}

	var aside string
	switch {
	case bytes.HasPrefix(first, []byte("NOTE:")):
		aside = "note"
	case bytes.HasPrefix(first, []byte("WARNING:")):
		aside = "warning"
	}

	switch {
	case aside != "" && entering:
		_, _ = fmt.Fprintf(w, "<aside class=\"%s\">\n", aside)
	case aside != "":
		_, _ = w.WriteString("</aside>\n")
	case entering:
		_, _ = w.WriteString("<blockquote>\n")
	default:
		_, _ = w.WriteString("</blockquote>\n")
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	dest := r.resolve(string(n.Destination))
	_, _ = w.WriteString(`<a href="`)
	if !goldmarkhtml.IsDangerousURL([]byte(dest)) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape([]byte(dest), true)))
	}
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	if n.Attributes() != nil {
		goldmarkhtml.RenderAttributes(w, n, goldmarkhtml.LinkAttributeFilter)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	dest := r.resolve(string(n.Destination))
	_, _ = w.WriteString(`<img src="`)
	if !goldmarkhtml.IsDangerousURL([]byte(dest)) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape([]byte(dest), true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(n.Text(source)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	if n.Attributes() != nil {
		goldmarkhtml.RenderAttributes(w, n, goldmarkhtml.LinkAttributeFilter)
	}
	_, _ = w.WriteString(">")
	return ast.WalkSkipChildren, nil
}

// resolve resolves a relative link destination against the base URL. Links to other notes drop
// their ".md" extension (and a trailing "/index") so they point at the rendered note.
func (r *nodeRenderer) resolve(dest string) string {
	u, err := url.Parse(dest)
	if err != nil || u.IsAbs() || u.Path == "" {
		return dest
	}
	if strings.HasSuffix(u.Path, ".md") {
		u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, ".md"), "/index")
	}
	if r.Options.Base != nil {
		u = r.Options.Base.ResolveReference(u)
	}
	return u.String()
}

func getAttributeID(node ast.Node) string {
	attr, ok := node.AttributeString("id")
	if !ok {
		return ""
	}

	v, ok := attr.([]byte)
	if !ok {
		return ""
	}
	return string(v)
}
