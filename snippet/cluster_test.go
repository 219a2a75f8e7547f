package snippet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var tagComparer = cmp.AllowUnexported(tag{})

func TestClusterTags(t *testing.T) {
	tests := map[string]struct {
		highlight, bold []Range
		want            [][]tag
	}{
		"disjoint ranges form separate clusters": {
			highlight: []Range{{0, 2}},
			bold:      []Range{{5, 7}},
			want: [][]tag{
				{{0, Highlight, Open}, {2, Highlight, Close}},
				{{5, Bold, Open}, {7, Bold, Close}},
			},
		},
		"touching ranges of one kind stay apart": {
			bold: []Range{{0, 3}, {3, 6}},
			want: [][]tag{
				{{0, Bold, Open}, {3, Bold, Close}},
				{{3, Bold, Open}, {6, Bold, Close}},
			},
		},
		"cross-kind overlap is repaired": {
			highlight: []Range{{0, 10}},
			bold:      []Range{{5, 15}},
			want: [][]tag{{
				{0, Highlight, Open},
				{5, Bold, Open},
				{10, Bold, Close},
				{10, Highlight, Close},
				{10, Bold, Open},
				{15, Bold, Close},
			}},
		},
		"repair reopens every tag above the closed one": {
			highlight: []Range{{0, 10}},
			bold:      []Range{{2, 12}, {4, 14}},
			want: [][]tag{{
				{0, Highlight, Open},
				{2, Bold, Open},
				{4, Bold, Open},
				{10, Bold, Close},
				{10, Bold, Close},
				{10, Highlight, Close},
				{10, Bold, Open},
				{10, Bold, Open},
				{12, Bold, Close},
				{14, Bold, Close},
			}},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := clusterTags(buildTags(test.highlight, test.bold))
			if diff := cmp.Diff(test.want, got, tagComparer); diff != "" {
				t.Errorf("clusters mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("unmatched close is dropped", func(t *testing.T) {
		got := clusterTags([]tag{{1, Bold, Close}, {2, Bold, Open}, {3, Bold, Close}})
		want := [][]tag{{{2, Bold, Open}, {3, Bold, Close}}}
		if diff := cmp.Diff(want, got, tagComparer); diff != "" {
			t.Errorf("clusters mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMergeClusters(t *testing.T) {
	clusters := [][]tag{
		{{0, Bold, Open}, {2, Bold, Close}},
		{{4, Bold, Open}, {6, Bold, Close}},
		{{20, Bold, Open}, {21, Bold, Close}},
		{{30, Bold, Open}, {31, Bold, Close}},
	}
	got := mergeClusters(clusters, 10)
	want := [][]tag{
		{{0, Bold, Open}, {2, Bold, Close}, {4, Bold, Open}, {6, Bold, Close}, {20, Bold, Open}, {21, Bold, Close}},
		{{30, Bold, Open}, {31, Bold, Close}},
	}
	if diff := cmp.Diff(want, got, tagComparer); diff != "" {
		t.Errorf("merged clusters mismatch (-want +got):\n%s", diff)
	}
}
