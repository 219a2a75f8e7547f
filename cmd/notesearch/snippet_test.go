package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sourcegraph/notesearch/snippet"
)

func TestParseRanges(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    []snippet.Range
		wantErr bool
	}{
		"empty":       {input: "", want: nil},
		"one":         {input: "0:5", want: []snippet.Range{{0, 5}}},
		"several":     {input: "0:5, 10:12", want: []snippet.Range{{0, 5}, {10, 12}}},
		"no colon":    {input: "5", wantErr: true},
		"bad start":   {input: "a:5", wantErr: true},
		"bad end":     {input: "0:b", wantErr: true},
		"empty range": {input: "0:5,", wantErr: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseRanges(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("got error %v, want error %v", err, test.wantErr)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ranges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunSnippet(t *testing.T) {
	text := strings.Repeat("x", 100) + "needle" + strings.Repeat("y", 100) + "pin" + strings.Repeat("z", 100)
	tests := map[string]struct {
		input string
		opt   snippetOptions
		want  string
	}{
		"windowed": {
			input: text,
			opt:   snippetOptions{windowSize: 6, bold: []snippet.Range{{100, 106}, {206, 209}}},
			want:  "<b>needle</b> … yy<b>pin</b>z\n",
		},
		"title": {
			input: "Hello World",
			opt:   snippetOptions{windowSize: 1, bold: []snippet.Range{{6, 11}}, title: true},
			want:  "Hello <b>World</b>\n",
		},
		"highlight and bold": {
			input: "the quick brown fox",
			opt:   snippetOptions{windowSize: 200, highlight: []snippet.Range{{4, 19}}, bold: []snippet.Range{{10, 15}}},
			want:  "the <hl>quick <b>brown</b> fox</hl>\n",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runSnippet(strings.NewReader(test.input), &buf, snippet.HTMLFormatter{}, test.opt); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}

	t.Run("invalid window is a usage error", func(t *testing.T) {
		err := runSnippet(strings.NewReader("abc"), &bytes.Buffer{}, snippet.PlainFormatter{}, snippetOptions{windowSize: 0, bold: []snippet.Range{{0, 1}}})
		if _, ok := err.(*usageError); !ok {
			t.Errorf("got error %v (%T), want *usageError", err, err)
		}
	})

	t.Run("no ranges", func(t *testing.T) {
		err := runSnippet(strings.NewReader("abc"), &bytes.Buffer{}, snippet.PlainFormatter{}, snippetOptions{windowSize: 10})
		if e, ok := err.(*exitCodeError); !ok || e.exitCode != 1 {
			t.Errorf("got error %v, want exit code 1", err)
		}
	})
}
