package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/notesearch/snippet"
)

func init() {
	flagSet := flag.NewFlagSet("snippet", flag.ContinueOnError)
	var (
		windowSize = flagSet.Int("window", snippet.DefaultWindowSize, "target snippet length in runes")
		highlight  = flagSet.String("hl", "", "highlight `ranges` as comma-separated start:end rune offsets")
		bold       = flagSet.String("b", "", "bold `ranges` as comma-separated start:end rune offsets")
		title      = flagSet.Bool("title", false, "mark the bold ranges over the whole text, with no windowing")
		format     = flagSet.String("format", "auto", formatFlagUsage)
	)

	handler := func(args []string) error {
		f, err := formatter(*format, os.Stdout)
		if err != nil {
			return err
		}
		opt := snippetOptions{windowSize: *windowSize, title: *title}
		if opt.highlight, err = parseRanges(*highlight); err != nil {
			return &usageError{errors.WithMessage(err, "-hl")}
		}
		if opt.bold, err = parseRanges(*bold); err != nil {
			return &usageError{errors.WithMessage(err, "-b")}
		}
		return runSnippet(os.Stdin, os.Stdout, f, opt)
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "excerpt and mark text read from stdin",
		LongDescription:  "The snippet subcommand reads text from stdin and prints the excerpts containing the given highlight and bold ranges.",
		handler:          handler,
	})
}

type snippetOptions struct {
	windowSize      int
	highlight, bold []snippet.Range
	title           bool
}

func runSnippet(r io.Reader, w io.Writer, f snippet.Formatter, opt snippetOptions) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	text := string(data)

	var snippets []snippet.Snippet
	if opt.title {
		snippets = []snippet.Snippet{snippet.GenerateOne(text, opt.bold)}
	} else {
		snippets, err = snippet.Generate(text, opt.highlight, opt.bold, opt.windowSize)
		if errors.Cause(err) == snippet.ErrInvalidWindowSize {
			return &usageError{err}
		} else if err != nil {
			return err
		}
	}
	if len(snippets) == 0 {
		return &exitCodeError{error: errors.New("no snippets"), exitCode: 1}
	}
	_, err = fmt.Fprintln(w, snippet.Join(f, snippets, snippet.DefaultSeparator))
	return err
}

// parseRanges parses comma-separated start:end pairs, such as "0:5,10:12".
func parseRanges(s string) ([]snippet.Range, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ranges := make([]snippet.Range, len(parts))
	for i, part := range parts {
		bounds := strings.SplitN(part, ":", 2)
		if len(bounds) != 2 {
			return nil, errors.Errorf("invalid range %q (want start:end)", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range start in %q", part)
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range end in %q", part)
		}
		ranges[i] = snippet.Range{Start: start, End: end}
	}
	return ranges, nil
}
