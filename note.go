package notesearch

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sourcegraph/notesearch/markdown"
)

// Note represents a Markdown-formatted note. To create a Note, use one of the Notebook methods.
type Note struct {
	Path     string            // the canonical URL path (without ".md" or "/index.md")
	FilePath string            // the filename in the content file system
	Data     []byte            // the note's file contents
	Doc      markdown.Document // the Markdown doc
	LastEdit time.Time         // the file's modification time
}

func contentFilePathToPath(filePath string) string {
	path := strings.TrimSuffix(filePath, ".md")
	if path == "index" {
		return ""
	}
	return strings.TrimSuffix(path, "/index")
}

// resolveAndReadAll resolves a URL path to a file path, adding a file extension (.md) and a
// directory index filename as needed. It also returns the file content and modification time.
func resolveAndReadAll(fs http.FileSystem, path string) (filePath string, data []byte, modTime time.Time, err error) {
	filePath = path + ".md"
	data, modTime, err = readFileModTime(fs, filePath)
	if isDir(fs, filePath) || (os.IsNotExist(err) && !strings.HasSuffix(path, "/index") && path != "index") {
		// Try looking up the path as a directory and reading its index file (index.md).
		return resolveAndReadAll(fs, filepath.Join(path, "index"))
	}
	return filePath, data, modTime, err
}

func isDir(fs http.FileSystem, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	fi, err := f.Stat()
	return err == nil && fi.Mode().IsDir()
}

func isNote(path string) bool {
	return filepath.Ext(path) == ".md"
}

// isContentAsset reports whether the file in the content file system is an asset (i.e., not a
// note). It typically matches .png, .gif, and .svg files.
func isContentAsset(urlPath string) bool {
	return filepath.Ext(urlPath) != "" && !isNote(urlPath)
}
