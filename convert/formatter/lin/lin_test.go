/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lin_test

import (
	"strings"
	"testing"

	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/convert/formatter/lin"
	"bennypowers.dev/transitnet/network"
)

func format(t *testing.T, n *network.Network, opts formatter.Options) string {
	t.Helper()
	out, err := lin.New().Format(n, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(out)
}

func TestFormat_Records(t *testing.T) {
	dist := 2.0
	fs := &network.Faresystem{Number: 3}
	fs.Attrs.SetQuoted("NAME", "Night Owl", network.SingleQuote)

	link := &network.TransitLink{NodePair: network.NodePair{A: 1, B: 2}, Comment: "ramp"}
	link.Attrs.Set("MODES", "1-3")

	n := &network.Network{
		Comments:    []string{";<<Trnbuild>>;;"},
		Links:       []network.Row{network.Comment{Text: "/* block */", Block: true}, link},
		Linkis:      []network.Row{&network.Linki{A: 5, B: 6, AccessType: "WNR", Distance: &dist}},
		Faresystems: []network.Row{fs},
		Trailer:     []string{" end"},
	}

	tests := []struct {
		name string
		want string
	}{
		{"header", ";;<<Trnbuild>>;;\n"},
		{"linki decimal", "5 6 WNR 2.0\n"},
		{"block comment", "/* block */\n"},
		{"raw sequence", "LINK NODES=1-2, MODES=1-3 ; ramp\n"},
		{"number lead", "FARESYSTEM NUMBER=3, NAME='Night Owl'\n"},
		{"trailer", "; end\n"},
	}
	got := format(t, n, formatter.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, got)
			}
		})
	}
	if strings.Index(got, "5 6 WNR") > strings.Index(got, "LINK") {
		t.Error("expected linki rows before other records")
	}
}

func TestFormat_Line(t *testing.T) {
	l := network.NewTransitLine("71")
	l.Attrs.Set("MODE", "5")
	l.Comment = "crosstown"
	l.Nodes = append(l.Nodes, network.NewNode(100), network.NewNode(-101))
	l.Nodes[0].Attrs.Set("DELAY", "1")
	l.Nodes[1].Comment = "pass"

	got := format(t, &network.Network{Lines: []network.Row{l}}, formatter.Options{Header: "generated"})
	want := "; generated\n\nLINE NAME=\"71\", MODE=5, ; crosstown\n N=100, DELAY=1\n N=-101 ; pass\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormat_PTSystem(t *testing.T) {
	mode := &network.Definition{Number: 11}
	mode.Attrs.Set("NUMBER", "11")
	mode.Attrs.Set("NAME", "Express")

	curve := &network.Curve{}
	curve.Number = 1
	curve.Attrs.Set("CURVE", "0-0,10-5")

	pt := &network.PTSystem{}
	pt.Modes.Put(11, mode)
	pt.WaitCurves.Put(1, curve)

	got := format(t, &network.Network{PTSystem: pt}, formatter.Options{})
	want := "WAITCRVDEF NUMBER=1, CURVE=0-0,10-5\nMODE NUMBER=11, NAME=Express\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

type strayRow struct{}

func (strayRow) Kind() network.Kind { return network.KindComment }

func TestFormat_UnexpectedRow(t *testing.T) {
	n := &network.Network{Lines: []network.Row{strayRow{}}}
	if _, err := lin.New().Format(n, formatter.Options{}); err == nil {
		t.Error("expected error for unknown row type")
	}
}
