package notesearch

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sourcegraph/notesearch/internal/search"
	"github.com/sourcegraph/notesearch/snippet"
	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

var tripNotes = map[string]string{
	"index.md":      "# Trips\n\nA list of [trips](trips/oslo.md).",
	"trips/oslo.md": "# Oslo\n\nWe visited the fjord by boat.\n\n## Food\n\nThe fish soup was great.",
	"trips/rome.md": "---\ntitle: Rome food\n---\nPasta and more pasta.",
}

func TestSearch(t *testing.T) {
	tests := map[string]struct {
		notes            map[string]string
		wantQueryResults map[string][]string
	}{
		"simple": {
			notes: map[string]string{
				"a.md": "a",
				"b.md": "b",
			},
			wantQueryResults: map[string][]string{
				"a": {"/a#: <hl><b>a</b></hl><b></b>"},
				"b": {"/b#: <hl><b>b</b></hl><b></b>"},
			},
		},
		"trips": {
			notes: tripNotes,
			wantQueryResults: map[string][]string{
				"fish soup": {
					"/trips/oslo#food: Oslo\n\nWe visited the fjord by boat.\n\nFood\n\n<hl>The <b>fish</b> <b>soup</b> was great.</hl>",
				},
				"fjord": {
					"/trips/oslo#: Oslo\n\n<hl>We visited the <b>fjord</b> by boat.</hl>\n\nFood\n\nThe fish soup was great.",
				},
				"zebra": nil,
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			nb := Notebook{
				Content: httpfs.New(mapfs.New(test.notes)),
				Base:    &url.URL{Path: "/"},
			}
			for query, wantResults := range test.wantQueryResults {
				t.Run(query, func(t *testing.T) {
					result, err := nb.Search(ctx, query)
					if err != nil {
						t.Fatal(err)
					}
					if diff := cmp.Diff(wantResults, toResultsList(result)); diff != "" {
						t.Errorf("results mismatch (-want +got):\n%s", diff)
					}
				})
			}
		})
	}
}

func toResultsList(result *search.Result) []string {
	var l []string
	for _, dr := range result.DocumentResults {
		for _, sr := range dr.Snippets {
			l = append(l, fmt.Sprintf("%s#%s: %s", dr.URL, sr.SectionID, snippet.Render(snippet.HTMLFormatter{}, sr.Snippet)))
		}
	}
	return l
}

func TestTitleHTML(t *testing.T) {
	nb := Notebook{Content: httpfs.New(mapfs.New(tripNotes))}
	result, err := nb.Search(context.Background(), "food")
	if err != nil {
		t.Fatal(err)
	}
	var titles []string
	for _, dr := range result.DocumentResults {
		titles = append(titles, string(titleHTML(dr)))
	}
	// The title containing every term is highlighted whole; the other only marks its matches.
	want := []string{"<hl>Rome food</hl>", "Oslo"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}
