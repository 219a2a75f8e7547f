package notesearch

import (
	"context"
	"net/url"
	"reflect"
	"testing"

	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

func TestCheck(t *testing.T) {
	tests := map[string]struct {
		notes        map[string]string
		wantProblems []string
	}{
		"valid links": {
			notes: map[string]string{
				"a.md":       "[a](a.md) [b](b/index.md) [c](#c) [d](https://example.com)",
				"b/index.md": "[a](../a.md) [b](index.md) ![i](i.gif)",
				"b/i.gif":    string(gifData),
			},
			wantProblems: nil,
		},
		"non-relative link path": {
			notes:        map[string]string{"a.md": "[a](/a.md)"},
			wantProblems: []string{"a.md: must use relative, not absolute, link to /a.md"},
		},
		"broken link": {
			notes:        map[string]string{"a.md": "[b](b.md)"},
			wantProblems: []string{"a.md: broken link to /b"},
		},
		"link to equivalent path not .md file": {
			notes:        map[string]string{"a.md": "[a](a)"},
			wantProblems: []string{"a.md: must link to .md file, not a"},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			nb := Notebook{
				Content: httpfs.New(mapfs.New(test.notes)),
				Base:    &url.URL{Path: "/"},
			}
			problems, err := nb.Check(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(problems, test.wantProblems) {
				t.Errorf("got problems %v, want %v", problems, test.wantProblems)
			}
		})
	}
}
