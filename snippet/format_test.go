package snippet

import (
	"io"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestHTMLFormatter(t *testing.T) {
	overlap := Snippet{Fragments: []Fragment{
		openMarker(Highlight), Text("a<b"),
		openMarker(Bold), Text("c"),
		closeMarker(Bold), closeMarker(Highlight), openMarker(Bold),
		Text("d&e"), closeMarker(Bold), Text("f"),
	}}
	tests := map[string]struct {
		formatter HTMLFormatter
		snippet   Snippet
		want      string
	}{
		"default tags": {
			snippet: overlap,
			want:    "<hl>a&lt;b<b>c</b></hl><b>d&amp;e</b>f",
		},
		"custom tag": {
			formatter: HTMLFormatter{Tags: map[Kind]string{Highlight: "mark"}},
			snippet:   overlap,
			want:      "<mark>a&lt;b<b>c</b></mark><b>d&amp;e</b>f",
		},
		"no markers": {
			snippet: GenerateOne(`"quoted"`, nil),
			want:    "&#34;quoted&#34;",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Render(test.formatter, test.snippet); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestPlainFormatter(t *testing.T) {
	s := GenerateOne("Hello World", []Range{{6, 11}})
	if got, want := Render(PlainFormatter{}, s), "Hello World"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	snippets, err := Generate("alpha beta gamma delta", nil, []Range{{0, 5}, {17, 22}}, 5)
	if err != nil {
		t.Fatal(err)
	}
	got := Join(HTMLFormatter{}, snippets, DefaultSeparator)
	if want := "<b>alpha</b> … <b>delta</b>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestTerminalFormatter(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	f := TerminalFormatter{Styles: map[Kind]lipgloss.Style{
		Highlight: r.NewStyle().Underline(true),
		Bold:      r.NewStyle().Bold(true),
	}}

	s := Snippet{Fragments: []Fragment{
		Text("one\n"), openMarker(Highlight), Text("two\nthree"), openMarker(Bold), Text("four"),
		closeMarker(Bold), closeMarker(Highlight), Text(" five"),
	}}
	got := Render(f, s)

	if !ansiPattern.MatchString(got) {
		t.Errorf("got %q, want styled output", got)
	}
	if plain, want := ansiPattern.ReplaceAllString(got, ""), "one\ntwo\nthreefour five"; plain != want {
		t.Errorf("got text %q, want %q", plain, want)
	}
	if got[:4] != "one\n" {
		t.Errorf("got %q, want unmarked text left unstyled", got)
	}
}
