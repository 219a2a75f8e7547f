package notesearch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Check checks the notes for common problems (such as broken links). Problems are sorted by file
// path.
func (n *Notebook) Check(ctx context.Context) (problems []string, err error) {
	notes, err := n.AllNotes(ctx)
	if err != nil {
		return nil, err
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	handler := n.Handler()
	for _, note := range notes {
		wg.Add(1)
		go func(note *Note) {
			defer wg.Done()
			noteProblems := n.checkNote(note, handler)

			mu.Lock()
			defer mu.Unlock()
			for _, p := range noteProblems {
				problems = append(problems, fmt.Sprintf("%s: %s", note.FilePath, p))
			}
		}(note)
	}
	wg.Wait()

	sort.Strings(problems)
	return problems, nil
}

func (n *Notebook) checkNote(note *Note, handler http.Handler) (problems []string) {
	// Find links that only work when served.
	for _, link := range note.Doc.Links {
		u, err := url.Parse(link.Destination)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid URL %q", link.Destination))
			continue
		}

		isPathOnly := u.Scheme == "" && u.Host == ""

		// Reject absolute paths because they break when browsing the notes on the file system, or
		// if the base path ever changes.
		if isPathOnly && strings.HasPrefix(u.Path, "/") {
			problems = append(problems, fmt.Sprintf("must use relative, not absolute, link to %s", link.Destination))
		}

		// Require that relative paths link to the actual .md file.
		if !link.Image && isPathOnly && u.Path != "" && !strings.HasSuffix(u.Path, ".md") {
			problems = append(problems, fmt.Sprintf("must link to .md file, not %s", u.Path))
		}
	}

	// Find broken links.
	doc, err := html.Parse(bytes.NewReader(note.Doc.HTML))
	if err != nil {
		return append(problems, err.Error())
	}
	walkHTMLDocument(doc, func(urlStr string) {
		u, err := url.Parse(urlStr)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid URL %q", urlStr))
			return
		}
		if u.Scheme != "" || u.Host != "" || u.Path == "" {
			return // external or same-page link
		}

		rr := httptest.NewRecorder()
		req, err := http.NewRequest("HEAD", u.Path, nil)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid request URI %q", urlStr))
			return
		}
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			problems = append(problems, fmt.Sprintf("broken link to %s", urlStr))
		}
	})
	return problems
}

// walkHTMLDocument calls fn for the URL of each link and image in the document.
func walkHTMLDocument(node *html.Node, fn func(url string)) {
	if node.Type == html.ElementNode {
		switch node.DataAtom {
		case atom.A:
			if href, ok := getAttribute(node, "href"); ok {
				fn(href)
			}
		case atom.Img:
			if src, ok := getAttribute(node, "src"); ok {
				fn(src)
			}
		}
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		walkHTMLDocument(c, fn)
	}
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
