package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch/internal/search"
	"github.com/sourcegraph/notesearch/snippet"
)

func init() {
	flagSet := flag.NewFlagSet("search", flag.ContinueOnError)
	var (
		format = flagSet.String("format", "auto", formatFlagUsage)
	)

	handler := func(args []string) error {
		f, err := formatter(*format, os.Stdout)
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")
		if strings.TrimSpace(query) == "" {
			return &usageError{errors.New("no query given")}
		}

		nb, _, logger, err := notebookFromFlags()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		result, err := nb.Search(context.Background(), query)
		if err != nil {
			return err
		}
		if result.Total == 0 {
			return &exitCodeError{error: errors.New("no results found"), exitCode: 1}
		}
		return printResults(os.Stdout, result, f)
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "search notes",
		LongDescription:  "The search subcommand searches notes and prints each match with excerpts marking the query's keywords and most relevant passages.",
		handler:          handler,
	})
}

// printResults prints each result's title and URL, followed by its snippets (or its preview when
// it has none).
func printResults(w io.Writer, result *search.Result, f snippet.Formatter) error {
	for _, dr := range result.DocumentResults {
		if _, err := fmt.Fprintf(w, "%d. %s (%s)\n", dr.Rank, snippet.Render(f, dr.TitleSnippet), dr.URL); err != nil {
			return err
		}
		for _, sr := range dr.Snippets {
			var section string
			if sr.SectionID != "" {
				section = "#" + sr.SectionID + ": "
			}
			if _, err := fmt.Fprintf(w, "   %s%s\n", section, indent(snippet.Render(f, sr.Snippet))); err != nil {
				return err
			}
		}
		if dr.Preview != "" {
			if _, err := fmt.Fprintf(w, "   %s\n", indent(dr.Preview)); err != nil {
				return err
			}
		}
	}
	if len(result.DocumentResults) < result.Total {
		if _, err := fmt.Fprintf(w, "(%d more)\n", result.Total-len(result.DocumentResults)); err != nil {
			return err
		}
	}
	return nil
}

func indent(s string) string {
	return strings.Replace(s, "\n", "\n   ", -1)
}
