package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sourcegraph/notesearch/snippet"
)

const formatFlagUsage = "output `format`: auto, plain, terminal, or html (auto uses terminal styling when stdout is a terminal)"

// formatter returns the snippet formatter for the -format flag value.
func formatter(format string, out *os.File) (snippet.Formatter, error) {
	switch format {
	case "auto":
		if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
			return snippet.TerminalFormatter{}, nil
		}
		return snippet.PlainFormatter{}, nil
	case "plain":
		return snippet.PlainFormatter{}, nil
	case "terminal":
		return snippet.TerminalFormatter{}, nil
	case "html":
		return snippet.HTMLFormatter{}, nil
	default:
		return nil, &usageError{fmt.Errorf("unknown format %q", format)}
	}
}
