/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/transitnet/grammar"
)

func tags(nodes []*grammar.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Tag)
	}
	return out
}

func TestParse_Values(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantTag  string
		wantText string
	}{
		{"identifier", "BART", grammar.TagAlphanums, "BART"},
		{"digits then letters", "10_20", grammar.TagAlphanums, "10_20"},
		{"negative", "-5", grammar.TagAlphanums, "-5"},
		{"decimal", "2.5", grammar.TagAlphanums, "2.5"},
		{"single quoted", "'a b'", grammar.TagStringSingle, "'a b'"},
		{"double quoted", `"a;b"`, grammar.TagStringDouble, `"a;b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "LINK NODES=1-2, NAME=" + tt.value + "\n"
			root := matchTransit(t, src)
			link := root.Children[0]
			if len(link.Children) != 2 {
				t.Fatalf("link children = %v, want two attributes", tags(link.Children))
			}
			val := link.Children[1].Children[1]
			if val.Tag != grammar.TagAttrValue || len(val.Children) != 1 {
				t.Fatalf("value = %s %v, want attr_value with one child", val.Tag, tags(val.Children))
			}
			got := val.Children[0]
			if got.Tag != tt.wantTag || got.Text([]byte(src)) != tt.wantText {
				t.Errorf("value = %s %q, want %s %q", got.Tag, got.Text([]byte(src)), tt.wantTag, tt.wantText)
			}
		})
	}
}

func TestParse_CaseInsensitiveKeywords(t *testing.T) {
	src := "link nodes=1-2\nLink Nodes=2-3\n"
	root := matchTransit(t, src)
	if got := tags(root.Children); !slices.Equal(got, []string{grammar.TagLink, grammar.TagLink}) {
		t.Fatalf("children = %v, want two links", got)
	}
	word := root.Children[1].Children[0].Children[0]
	if word.Tag != grammar.TagWordNodes || word.Text([]byte(src)) != "Nodes" {
		t.Errorf("keyword = %s %q, want word_nodes as written", word.Tag, word.Text([]byte(src)))
	}
}

func TestParse_NodeStart(t *testing.T) {
	src := "LINE NAME=\"a\", n = 7, N=8\n"
	root := matchTransit(t, src)
	line := root.Children[0]
	if got := tags(line.Children); !slices.Equal(got, []string{grammar.TagLinAttr, grammar.TagLinNode, grammar.TagLinNode}) {
		t.Fatalf("line children = %v", got)
	}
	start := line.Children[1].Children[0]
	if start.Tag != grammar.TagLinNodeStart || start.Text([]byte(src)) != "n =" {
		t.Errorf("node start = %s %q, want lin_nodestart \"n =\"", start.Tag, start.Text([]byte(src)))
	}
}

func TestParse_CommentRunOpensRecord(t *testing.T) {
	src := "LINE NAME=\"a\", N=1\n; one\n/* two */\nLINE NAME=\"b\", N=2\n"
	root := matchTransit(t, src)
	if root.Start != 0 || root.End != len(src) {
		t.Errorf("root span = %d-%d, want 0-%d", root.Start, root.End, len(src))
	}
	if got := tags(root.Children); !slices.Equal(got, []string{grammar.TagLine, grammar.TagLine}) {
		t.Fatalf("children = %v, want two lines", got)
	}
	if got := root.Children[0].Text([]byte(src)); got != `LINE NAME="a", N=1` {
		t.Errorf("first line text = %q", got)
	}
	second := root.Children[1]
	if second.Start != strings.Index(src, "; one") {
		t.Errorf("second line starts at %d, want the comment run", second.Start)
	}
	run := second.Children[0]
	if got := tags(run.Children); !slices.Equal(got, []string{grammar.TagSemicolonComment, grammar.TagCComment}) {
		t.Errorf("comment run = %v", got)
	}
}

func TestParseError(t *testing.T) {
	_, err := grammar.Parse([]byte("LINX NAME=1\n"))
	var perr *grammar.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if perr.Line != 1 || perr.Col != 1 || perr.Offset != 0 {
		t.Errorf("position = %d:%d @%d, want 1:1 @0", perr.Line, perr.Col, perr.Offset)
	}
	if perr.Msg == "" {
		t.Error("Msg is empty")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "1:1: ") || !strings.Contains(msg, `near "LINX NAME=1"`) {
		t.Errorf("Error() = %q", msg)
	}
}

func TestParseError_InvalidCharacter(t *testing.T) {
	_, err := grammar.Parse([]byte("LINK NODES=1-2\n@\n"))
	if !errors.Is(err, grammar.ErrGrammarMismatch) {
		t.Fatalf("Parse() error = %v, want ErrGrammarMismatch", err)
	}
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	for _, kw := range []string{`"LINE"`, `"FARESYSTEM"`, `"VEHICLETYPE"`} {
		if !strings.Contains(ebnf, kw) {
			t.Errorf("EBNF() does not mention %s", kw)
		}
	}
}

func TestLineCol(t *testing.T) {
	src := []byte("ab\ncdé\nf")
	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
		{100, 3, 2},
	}
	for _, tt := range tests {
		line, col := grammar.LineCol(src, tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}
