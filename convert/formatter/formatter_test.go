/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"testing"

	"bennypowers.dev/transitnet/convention"
	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/network"
)

func TestFormatHeader_Empty(t *testing.T) {
	result := formatter.FormatHeader("", ";")
	if result != "" {
		t.Errorf("expected empty string for empty header, got %q", result)
	}
}

func TestFormatHeader_SingleLine(t *testing.T) {
	result := formatter.FormatHeader("Copyright 2026\n", ";")
	expected := "; Copyright 2026\n\n"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestFormatHeader_MultiLine(t *testing.T) {
	result := formatter.FormatHeader("Copyright 2026\n\nGPLv3", "#")
	expected := "# Copyright 2026\n#\n# GPLv3\n\n"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestIndentOr(t *testing.T) {
	if got := formatter.IndentOr(formatter.Options{}, "  "); got != "  " {
		t.Errorf("expected default indent, got %q", got)
	}
	if got := formatter.IndentOr(formatter.Options{Indent: "\t"}, "  "); got != "\t" {
		t.Errorf("expected tab indent, got %q", got)
	}
}

func TestNewDocument(t *testing.T) {
	line := network.NewTransitLine("71")
	line.Comment = "crosstown"
	line.Nodes = append(line.Nodes, network.NewNode(1), network.NewNode(-2))

	curve := &network.Curve{Points: []network.Point{{X: 0, Y: 1}, {X: 5, Y: 2}}}
	curve.Number = 4

	pt := &network.PTSystem{}
	pt.WaitCurves.Put(4, curve)

	n := &network.Network{
		Convention: convention.PT,
		Comments:   []string{},
		Lines:      []network.Row{network.Comment{Text: " lines"}, line},
		PTSystem:   pt,
	}

	doc := formatter.NewDocument(n)
	if doc.Convention != "PT" {
		t.Errorf("Convention = %q, want PT", doc.Convention)
	}
	if doc.Comments != nil {
		t.Errorf("Comments = %v, want nil", doc.Comments)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(doc.Lines))
	}
	ld := doc.Lines[0]
	if ld.Name != "71" || ld.Comment != "crosstown" {
		t.Errorf("line = %+v", ld)
	}
	if ld.Nodes[1].Number != 2 || ld.Nodes[1].Stop {
		t.Errorf("node = %+v, want 2 without stop", ld.Nodes[1])
	}
	if got := doc.PTSystem.WaitCurves[0].Points; len(got) != 2 || got[1] != [2]float64{5, 2} {
		t.Errorf("points = %v", got)
	}
}
