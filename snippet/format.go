package snippet

import (
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter writes a Snippet in some markup.
type Formatter interface {
	Format(w io.Writer, s Snippet) error
}

// Render formats s into a string.
func Render(f Formatter, s Snippet) string {
	var b strings.Builder
	_ = f.Format(&b, s) // strings.Builder never fails
	return b.String()
}

// DefaultSeparator separates joined snippets.
const DefaultSeparator = " … "

// Join formats several snippets and joins them with sep.
func Join(f Formatter, snippets []Snippet, sep string) string {
	parts := make([]string, len(snippets))
	for i, s := range snippets {
		parts[i] = Render(f, s)
	}
	return strings.Join(parts, sep)
}

// HTMLFormatter escapes text and renders markers as elements, <hl>...</hl> and <b>...</b> unless
// Tags overrides the element name for a kind.
type HTMLFormatter struct {
	Tags map[Kind]string
}

func (f HTMLFormatter) tagName(k Kind) string {
	if name, ok := f.Tags[k]; ok {
		return name
	}
	return k.String()
}

func (f HTMLFormatter) Format(w io.Writer, s Snippet) error {
	for _, frag := range s.Fragments {
		var str string
		switch frag := frag.(type) {
		case Text:
			str = html.EscapeString(string(frag))
		case Marker:
			if frag.Edge == Open {
				str = "<" + f.tagName(frag.Kind) + ">"
			} else {
				str = "</" + f.tagName(frag.Kind) + ">"
			}
		}
		if _, err := io.WriteString(w, str); err != nil {
			return err
		}
	}
	return nil
}

// PlainFormatter writes only the text, dropping all markers.
type PlainFormatter struct{}

func (PlainFormatter) Format(w io.Writer, s Snippet) error {
	for _, frag := range s.Fragments {
		if t, ok := frag.(Text); ok {
			if _, err := io.WriteString(w, string(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// TerminalFormatter styles marked text for a terminal. Text inside several marked ranges gets the
// combined style of their kinds; highlight takes precedence where both set the same property.
type TerminalFormatter struct {
	Styles map[Kind]lipgloss.Style
}

// DefaultTerminalStyles underlines passages and bolds keyword matches.
func DefaultTerminalStyles() map[Kind]lipgloss.Style {
	return map[Kind]lipgloss.Style{
		Highlight: lipgloss.NewStyle().Underline(true),
		Bold:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

func (f TerminalFormatter) Format(w io.Writer, s Snippet) error {
	styles := f.Styles
	if styles == nil {
		styles = DefaultTerminalStyles()
	}

	depth := map[Kind]int{}
	for _, frag := range s.Fragments {
		switch frag := frag.(type) {
		case Marker:
			if frag.Edge == Open {
				depth[frag.Kind]++
			} else if depth[frag.Kind] > 0 {
				depth[frag.Kind]--
			}
		case Text:
			style, styled := f.activeStyle(styles, depth)
			str := string(frag)
			if styled {
				str = renderLines(style, str)
			}
			if _, err := io.WriteString(w, str); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f TerminalFormatter) activeStyle(styles map[Kind]lipgloss.Style, depth map[Kind]int) (lipgloss.Style, bool) {
	var (
		style  lipgloss.Style
		styled bool
	)
	for _, k := range []Kind{Highlight, Bold} {
		if depth[k] == 0 {
			continue
		}
		ks, ok := styles[k]
		if !ok {
			continue
		}
		if !styled {
			style, styled = ks, true
		} else {
			style = style.Inherit(ks)
		}
	}
	return style, styled
}

// renderLines styles each line separately; lipgloss pads multi-line blocks to a common width, which
// would alter the text.
func renderLines(style lipgloss.Style, s string) string {
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
