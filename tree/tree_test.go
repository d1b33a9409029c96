/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/tree"
)

func build(t *testing.T, src string) *tree.File {
	t.Helper()
	root, err := grammar.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f, err := tree.Build([]byte(src), root)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return f
}

const mixed = `; header
SUPPLINK N=2-3, MODE=7
FACTOR MAXWAITTIME=5
LINE NAME="1", N=1, 2
; before link
LINK NODES=1-2
LINE NAME="2", N=2, 3
; footer
`

func TestBuild_RecordVariants(t *testing.T) {
	f := build(t, mixed)

	var got []string
	for _, r := range f.Records {
		switch r.(type) {
		case *tree.CommentRun:
			got = append(got, "comments")
		case *tree.Line:
			got = append(got, "line")
		case *tree.Link:
			got = append(got, "link")
		case *tree.Supplink:
			got = append(got, "supplink")
		case *tree.Factor:
			got = append(got, "factor")
		default:
			got = append(got, r.Tag())
		}
	}
	want := []string{"comments", "supplink", "factor", "line", "link", "line", "comments"}
	if !slices.Equal(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
}

func TestBuild_WrongRoot(t *testing.T) {
	_, err := tree.Build(nil, &grammar.Node{Tag: grammar.TagLine})
	if !errors.Is(err, tree.ErrUnknownProduction) {
		t.Errorf("Build() error = %v, want ErrUnknownProduction", err)
	}
}

func TestItem_Text(t *testing.T) {
	f := build(t, "LINK NODES=10-20, SPEED=30\n")
	parts := f.Records[0].Parts()
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	pair, ok := parts[0].Child(grammar.TagNodePair)
	if !ok {
		t.Fatal("expected nodepair child")
	}
	if pair.Text != "10-20" {
		t.Errorf("pair.Text = %q, want %q", pair.Text, "10-20")
	}
	start, end := f.Records[0].Span()
	if start != 0 || end <= start {
		t.Errorf("Span() = %d, %d", start, end)
	}
}

func TestItem_CommentBody(t *testing.T) {
	f := build(t, ";;<<PT>><<LINE>>;;\r\nLINK NODES=1-2\n")
	run, ok := f.Records[0].(*tree.CommentRun)
	if !ok {
		t.Fatalf("first record is %T, want *tree.CommentRun", f.Records[0])
	}
	comments := run.Item.Comments()
	if len(comments) != 1 {
		t.Fatalf("len(comments) = %d, want 1", len(comments))
	}
	if got := comments[0].CommentBody(); got != ";<<PT>><<LINE>>;;" {
		t.Errorf("CommentBody() = %q", got)
	}
}

func TestCollect(t *testing.T) {
	b := tree.Collect(build(t, mixed))

	if len(b.Header) != 1 || len(b.Trailer) != 1 {
		t.Errorf("header %d, trailer %d, want 1 and 1", len(b.Header), len(b.Trailer))
	}
	// the comment before the link opens that record, so it is not free
	if len(b.Comments) != 2 {
		t.Errorf("len(Comments) = %d, want 2", len(b.Comments))
	}
	if len(b.Supplinks) != 1 || len(b.Factors) != 1 {
		t.Errorf("supplinks %d, factors %d, want 1 and 1", len(b.Supplinks), len(b.Factors))
	}
	// the leading comment run stays in the link stream
	if len(b.Links) != 2 || b.Links[0].Tag != grammar.TagSMCW {
		t.Errorf("Links = %v", b.Links)
	}
}

func TestFile_Count(t *testing.T) {
	counts := build(t, mixed).Count()
	tests := []struct {
		tag  string
		want int
	}{
		{grammar.TagSMCW, 2},
		{grammar.TagLine, 2},
		{grammar.TagLink, 1},
		{grammar.TagSupplink, 1},
		{grammar.TagFactor, 1},
		{grammar.TagPNR, 0},
	}
	for _, tt := range tests {
		if got := counts[tt.tag]; got != tt.want {
			t.Errorf("Count()[%s] = %d, want %d", tt.tag, got, tt.want)
		}
	}
}

type countingVisitor struct {
	tree.Buckets
	lines int
}

func (v *countingVisitor) VisitLine(r *tree.Line) error {
	v.lines++
	return nil
}

func TestWalk_StopsOnError(t *testing.T) {
	f := build(t, "LINE NAME=\"a\", N=1, 2\nLINE NAME=\"b\", N=3, 4\n")
	v := &countingVisitor{}
	if err := tree.Walk(f, v); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if v.lines != 2 {
		t.Errorf("lines = %d, want 2", v.lines)
	}

	stop := errors.New("stop")
	if err := tree.Walk(f, stopVisitor{Buckets: &tree.Buckets{}, err: stop}); !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
}

type stopVisitor struct {
	*tree.Buckets
	err error
}

func (v stopVisitor) VisitLine(*tree.Line) error { return v.err }
