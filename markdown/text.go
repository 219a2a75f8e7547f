package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// blockSeparator separates blocks in a Document's Text.
const blockSeparator = "\n\n"

// textBuilder accumulates block texts, tracking the length in runes so block and section offsets
// can be recorded as rune offsets.
type textBuilder struct {
	strings.Builder
	runes  int
	blocks []Block
}

// addText appends a block of text and returns its rune range. Blank text is not added.
func (b *textBuilder) addText(s string) (Block, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Block{Start: b.runes, End: b.runes}, false
	}
	if b.runes > 0 {
		b.WriteString(blockSeparator)
		b.runes += len(blockSeparator)
	}
	start := b.runes
	b.WriteString(s)
	b.runes += utf8.RuneCountInString(s)
	return Block{Start: start, End: b.runes}, true
}

// addBlock appends a block of text that is also a passage.
func (b *textBuilder) addBlock(s string) {
	if block, ok := b.addText(s); ok {
		b.blocks = append(b.blocks, block)
	}
}

// extractText returns the plain text of the document and its passage blocks. Headings are part of
// the text but are not passages. It sets the Start offset of each section, which must be the
// headings of root in document order.
func extractText(root ast.Node, source []byte, sections []Section) (string, []Block) {
	var (
		b       textBuilder
		heading int
	)
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			block, _ := b.addText(inlineText(n, source))
			if heading < len(sections) {
				sections[heading].Start = block.Start
				heading++
			}
		case *ast.Paragraph, *ast.TextBlock:
			b.addBlock(inlineText(n, source))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			b.addBlock(linesText(n, source))
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, strings.TrimSpace(inlineText(c, source)))
			}
			b.addBlock(strings.Join(cells, "\t"))
		case *ast.HTMLBlock:
		default:
			return ast.WalkContinue, nil
		}
		return ast.WalkSkipChildren, nil
	})
	return b.String(), b.blocks
}

// inlineText returns the text content of node's inline descendants. Raw HTML is dropped and line
// breaks become newlines.
func inlineText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(n.Value)
		case *ast.AutoLink:
			sb.Write(n.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func linesText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}
