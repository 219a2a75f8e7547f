package notesearch

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch/internal/search"
	"go.uber.org/zap"
)

const (
	defaultAPIResults = 5
	maxAPIResults     = 500

	maxAPISnippetSize = 256
)

// Handler returns an http.Handler that serves the notebook.
func (n *Notebook) Handler() http.Handler {
	m := http.NewServeMux()

	const (
		cacheMaxAge0     = "max-age=0"
		cacheMaxAgeShort = "max-age=60"
		cacheMaxAgeLong  = "max-age=300"
	)
	isNoCacheRequest := func(r *http.Request) bool {
		return r.Header.Get("Cache-Control") == "no-cache"
	}
	setCacheControl := func(w http.ResponseWriter, r *http.Request, cacheControl string) {
		if isNoCacheRequest(r) {
			w.Header().Set("Cache-Control", cacheMaxAge0)
		} else {
			w.Header().Set("Cache-Control", cacheControl)
		}
	}
	isReadMethod := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Method != "GET" && r.Method != "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return false
		}
		return true
	}

	basePath := n.base().Path

	// Serve search.
	m.Handle(path.Join(basePath, "search"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isReadMethod(w, r) {
			return
		}

		queryStr := r.URL.Query().Get("q")
		result, err := n.Search(r.Context(), queryStr)
		if err != nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			http.Error(w, "search error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		var respData []byte
		if r.Method == "GET" {
			respData, err = n.renderSearchPage(queryStr, result)
			if err != nil {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		setCacheControl(w, r, cacheMaxAgeShort)
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	}))

	// Serve the JSON search API.
	m.Handle(path.Join(basePath, "api/search"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isReadMethod(w, r) {
			return
		}

		params, err := parseAPISearchParams(r.URL.Query())
		if err != nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			writeJSON(w, http.StatusBadRequest, apiResponse{Code: http.StatusBadRequest, Status: "invalid parameters"})
			return
		}

		opt := n.SearchOptions
		opt.Limit = params.k
		if params.snippetSize != 0 {
			opt.WindowSize = params.snippetSize
		}
		opt.SkipTitle = !params.title
		result, err := n.search(r.Context(), params.query, opt)
		if err != nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			writeJSON(w, http.StatusInternalServerError, apiResponse{Code: http.StatusInternalServerError, Status: "search error: " + err.Error()})
			return
		}
		setCacheControl(w, r, cacheMaxAgeShort)
		writeJSON(w, http.StatusOK, apiResponse{Code: http.StatusOK, Status: "okay", Content: newAPISearchContent(result, params.quoted)})
	}))

	// Serve notes.
	m.Handle(basePath, http.StripPrefix(basePath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isReadMethod(w, r) {
			return
		}

		if isContentAsset(r.URL.Path) {
			// Serve non-Markdown content files (such as images) using http.FileServer.
			setCacheControl(w, r, cacheMaxAgeLong)
			http.FileServer(n.Content).ServeHTTP(w, requestShallowCopyWithURLPath(r, "/"+r.URL.Path))
			return
		}

		data := PageData{Path: r.URL.Path}
		note, err := n.ResolveNote(r.URL.Path)
		if err == nil {
			// Strip trailing slashes for consistency.
			if strings.HasSuffix(r.URL.Path, "/") {
				http.Redirect(w, r, path.Join(basePath, strings.TrimSuffix(r.URL.Path, "/")), http.StatusMovedPermanently)
				return
			}
			data.Note = note
		} else {
			if !os.IsNotExist(err) {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "note error: "+err.Error(), http.StatusInternalServerError)
				return
			}
			data.NotFoundError = true
		}

		var respData []byte
		if r.Method == "GET" {
			respData, err = n.renderNotePage(&data)
			if err != nil {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		// Don't cache errors; do cache on success.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if data.Note == nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			w.WriteHeader(http.StatusNotFound)
		} else {
			setCacheControl(w, r, cacheMaxAgeShort)
		}
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	})))

	return n.logRequests(m)
}

// apiSearchParams are the query parameters of the search API.
type apiSearchParams struct {
	query       string // q
	k           int    // k: number of results
	snippetSize int    // ss: window size, search.WholeText, or 0 for the notebook's default
	quoted      bool   // quoted: mark snippets (false returns plain text)
	title       bool   // title: mark query matches in titles
}

func parseAPISearchParams(values url.Values) (apiSearchParams, error) {
	params := apiSearchParams{
		query:  strings.TrimSpace(values.Get("q")),
		k:      defaultAPIResults,
		quoted: true,
		title:  true,
	}
	if params.query == "" {
		return params, errors.New("empty query")
	}

	var err error
	if s := values.Get("k"); s != "" {
		if params.k, err = parseIntInRange(s, 1, maxAPIResults); err != nil {
			return params, errors.WithMessage(err, "k")
		}
	}
	if s := values.Get("ss"); s != "" {
		if params.snippetSize, err = parseIntInRange(s, search.WholeText, maxAPISnippetSize); err != nil {
			return params, errors.WithMessage(err, "ss")
		}
		if params.snippetSize == 0 {
			return params, errors.New("ss: must not be 0")
		}
	}
	if s := values.Get("quoted"); s != "" {
		if params.quoted, err = strconv.ParseBool(s); err != nil {
			return params, errors.WithMessage(err, "quoted")
		}
	}
	if s := values.Get("title"); s != "" {
		if params.title, err = strconv.ParseBool(s); err != nil {
			return params, errors.WithMessage(err, "title")
		}
	}
	return params, nil
}

func parseIntInRange(s string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, errors.Errorf("%d out of range [%d, %d]", v, lo, hi)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	_ = enc.Encode(v)
}

func requestShallowCopyWithURLPath(r *http.Request, path string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = path
	return r2
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (n *Notebook) logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		n.logger().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
