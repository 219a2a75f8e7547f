package main

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch"
	"github.com/sourcegraph/notesearch/internal/search"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const (
	contentEnvVar    = "NOTESEARCH_CONTENT"
	windowSizeEnvVar = "NOTESEARCH_WINDOW_SIZE"
)

// notesearchConfig is the shape of notesearch.yml. Relative paths are relative to the directory
// containing the config file.
type notesearchConfig struct {
	Content     string `yaml:"content"`
	Templates   string `yaml:"templates,omitempty"`
	BaseURLPath string `yaml:"baseURLPath,omitempty"`
	Search      struct {
		WindowSize  int `yaml:"windowSize,omitempty"`
		MaxSnippets int `yaml:"maxSnippets,omitempty"`
		MaxPassages int `yaml:"maxPassages,omitempty"`
		Limit       int `yaml:"limit,omitempty"`
	} `yaml:"search"`
	Log struct {
		Mode string `yaml:"mode,omitempty"`
	} `yaml:"log"`
}

// loadConfig reads the first config file found in the search paths and applies environment
// overrides. With no config file, the content directory must be given in the environment.
func loadConfig(searchPaths string, getenv func(string) string) (*notesearchConfig, error) {
	var config notesearchConfig
	found := false
	for _, path := range filepath.SplitList(searchPaths) {
		data, err := ioutil.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, errors.WithMessage(err, "reading notesearch config file (from -config flag)")
		}
		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("parsing %s", path))
		}
		dir := filepath.Dir(path)
		config.Content = resolvePath(dir, config.Content)
		config.Templates = resolvePath(dir, config.Templates)
		found = true
		break
	}

	if v := getenv(contentEnvVar); v != "" {
		config.Content = v
		found = true
	}
	if !found {
		return nil, fmt.Errorf("no notesearch.yml config file found (search paths: %s) and %s is not set", searchPaths, contentEnvVar)
	}
	if v := getenv(windowSizeEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("invalid %s", windowSizeEnvVar))
		}
		config.Search.WindowSize = n
	}
	if config.Content == "" {
		return nil, errors.New("no content directory configured")
	}
	if config.Search.WindowSize < 0 {
		return nil, &usageError{fmt.Errorf("search window size must not be negative (got %d)", config.Search.WindowSize)}
	}
	return &config, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func (c *notesearchConfig) searchOptions() search.Options {
	return search.Options{
		WindowSize:  c.Search.WindowSize,
		MaxSnippets: c.Search.MaxSnippets,
		MaxPassages: c.Search.MaxPassages,
		Limit:       c.Search.Limit,
	}
}

func notebookFromConfig(config *notesearchConfig, logger *zap.Logger) *notesearch.Notebook {
	nb := &notesearch.Notebook{
		Content:       http.Dir(config.Content),
		SearchOptions: config.searchOptions(),
		Logger:        logger,
	}
	if config.Templates != "" {
		nb.Templates = http.Dir(config.Templates)
	}
	if config.BaseURLPath != "" {
		nb.Base = &url.URL{Path: config.BaseURLPath}
	}
	return nb
}

// notebookFromFlags loads the config named by the -config flag and opens its notebook.
func notebookFromFlags() (*notesearch.Notebook, *notesearchConfig, *zap.Logger, error) {
	config, err := loadConfig(*configPath, os.Getenv)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger(config.Log.Mode)
	if err != nil {
		return nil, nil, nil, err
	}
	return notebookFromConfig(config, logger), config, logger, nil
}
