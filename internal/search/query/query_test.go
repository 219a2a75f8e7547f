package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		query      string
		wantTokens []string
	}{
		"words":           {query: "Foo  bar foo", wantTokens: []string{"foo", "bar"}},
		"quoted phrase":   {query: `"quick brown" fox`, wantTokens: []string{"quick brown", "fox"}},
		"unterminated":    {query: `fox "lazy dog`, wantTokens: []string{"fox", "lazy dog"}},
		"exclusion":       {query: "fox -dog", wantTokens: []string{"fox"}},
		"lone dash":       {query: "a - b", wantTokens: []string{"a", "-", "b"}},
		"empty":           {query: "   ", wantTokens: nil},
		"empty quotation": {query: `"" x`, wantTokens: []string{"x"}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			q := Parse(test.query)
			if diff := cmp.Diff(test.wantTokens, q.Tokens()); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if q.String() != test.query {
				t.Errorf("got String() %q, want %q", q.String(), test.query)
			}
		})
	}
}

func TestQuery_Match(t *testing.T) {
	tests := map[string]struct {
		query, title, text string
		want               bool
	}{
		"text match":     {query: "fox", text: "the Fox", want: true},
		"title match":    {query: "fox", title: "Fox notes", text: "nothing", want: true},
		"no match":       {query: "fox", text: "dog", want: false},
		"excluded":       {query: "fox -dog", text: "fox and dog", want: false},
		"only excluded":  {query: "-dog", text: "cat", want: false},
		"partial tokens": {query: "fox cat", text: "fox", want: true},
		"empty query":    {query: "", text: "fox", want: false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Parse(test.query).Match(test.title, test.text); got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestQuery_MatchAll(t *testing.T) {
	q := Parse("fox dog -cat")
	if !q.MatchAll("Dog and FOX") {
		t.Error("want match when all terms occur")
	}
	if q.MatchAll("fox only") {
		t.Error("want no match when a term is missing")
	}
	if Parse("-cat").MatchAll("anything") {
		t.Error("want no match without included terms")
	}
}

func TestQuery_Score(t *testing.T) {
	q := Parse("fox dog")
	both := q.Score("", "fox dog")
	one := q.Score("", "fox cat")
	inTitle := q.Score("fox", "fox dog")
	if !(both > one) {
		t.Errorf("got score %v for both terms, want more than %v for one term", both, one)
	}
	if !(inTitle > both) {
		t.Errorf("got score %v for title match, want more than %v", inTitle, both)
	}
}

func TestQuery_FindAllIndex(t *testing.T) {
	tests := map[string]struct {
		text  string
		query string
		want  []Match
	}{
		"simple": {
			text:  "aa bb aa",
			query: "aa",
			want:  []Match{{0, 2}, {6, 8}},
		},
		"tokenization": {
			text:  "aa bb cc",
			query: "cc bb",
			want:  []Match{{3, 5}, {6, 8}},
		},
		"case insensitive": {
			text:  "Go go GO",
			query: "go",
			want:  []Match{{0, 2}, {3, 5}, {6, 8}},
		},
		"overlapping terms": {
			text:  "foobar",
			query: "foo foobar",
			want:  []Match{{0, 3}, {0, 6}},
		},
		"rune offsets": {
			text:  "café ☃ déjà vu",
			query: "déjà ☃",
			want:  []Match{{5, 6}, {7, 11}},
		},
		"excluded terms not reported": {
			text:  "fox dog",
			query: "fox -dog",
			want:  []Match{{0, 3}},
		},
		"no match": {
			text:  "abc",
			query: "x",
			want:  nil,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			q := Parse(test.query)
			matches := q.FindAllIndex(test.text)
			if diff := cmp.Diff(test.want, matches); diff != "" {
				t.Errorf("matches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
