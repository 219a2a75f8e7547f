package notesearch

import (
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

func TestWalkFileSystem(t *testing.T) {
	wantAllPaths := []string{
		"e.md",
		"a/b.md",
		"f/g.md",
		"f/h.md",
		"a/c/d.md",
	}
	files := make(map[string]string, len(wantAllPaths))
	for _, path := range wantAllPaths {
		files[path] = ""
	}
	files["x/y.png"] = ""      // add file that does not pass the isMarkdown filter
	files[".git/HEAD.md"] = "" // dot-dirs are skipped
	fs := httpfs.New(mapfs.New(files))

	var allPaths []string
	isMarkdown := func(path string) bool { return filepath.Ext(path) == ".md" }
	collect := func(path string) error {
		allPaths = append(allPaths, path)
		return nil
	}
	if err := WalkFileSystem(fs, isMarkdown, collect); err != nil {
		t.Fatal(err)
	}
	// Breadth-first, with entries sorted by name.
	if !reflect.DeepEqual(allPaths, wantAllPaths) {
		t.Errorf("got paths %v, want %v", allPaths, wantAllPaths)
	}
}

func TestContentFilePathToPath(t *testing.T) {
	tests := map[string]string{
		"index.md":   "",
		"a.md":       "a",
		"a/b.md":     "a/b",
		"a/index.md": "a",
	}
	for filePath, wantPath := range tests {
		path := contentFilePathToPath(filePath)
		if path != wantPath {
			t.Errorf("%s: got %q, want %q", filePath, path, wantPath)
		}
	}
}
